package selector

import (
	"testing"

	"github.com/selcraft/selcraft/pkg/errors"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"element", "div", "div"},
		{"id", "#main", "#main"},
		{"classes", ".a.b", ".a.b"},
		{"element with id", "table#data", "table#data"},
		{"attribute", `a[href$=".png"]:focus`, `a[href$=".png"]:focus`},
		{"bare attribute", "[disabled]", "[disabled]"},
		{"pseudo-element", "p::first-line", "p::first-line"},
		{"functional pseudo-class", "li:nth-child(2n+1)", "li:nth-child(2n+1)"},
		{"adjacent sibling", "div#main + table#data", "div#main + table#data"},
		{"child", "ul > li", "ul > li"},
		{"general sibling", "h1 ~ p", "h1 ~ p"},
		{"tight combinator", "ul>li", "ul > li"},
		{"extra spacing", "div   +   p", "div + p"},
		{"three compounds", "nav > ul ~ li", "nav > ul ~ li"},
		// Canonical descendant rendering wraps the space symbol in the
		// two separator spaces.
		{"descendant", "ul li", "ul   li"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			got, err := r.Render()
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAppliesGating(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"duplicate id", "#a#b", errors.ErrCodeDuplicateFragment},
		{"duplicate pseudo-element", "p::before::after", errors.ErrCodeDuplicateFragment},
		{"id after class", ".nav#main", errors.ErrCodeOrderViolation},
		{"class after attribute", "[disabled].wide", errors.ErrCodeOrderViolation},
		{"attribute after pseudo-class", "a:hover[disabled]", errors.ErrCodeOrderViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"leading combinator", "> div"},
		{"trailing combinator", "div >"},
		{"consecutive combinators", "a + + b"},
		{"class without name", "a."},
		{"unterminated attribute", "[href"},
		{"bare colon", "a:"},
		{"unknown delim", "a & b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if !errors.Is(err, errors.ErrCodeInvalidSelector) {
				t.Errorf("code = %v, want INVALID_SELECTOR", errors.GetCode(err))
			}
		})
	}
}
