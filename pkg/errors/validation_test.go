package errors

import (
	"strings"
	"testing"
)

func TestValidateIdent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid element", "div", false},
		{"valid with dash", "my-widget", false},
		{"valid with underscore", "nav_bar", false},
		{"valid leading dash", "-webkit-box", false},
		{"valid leading underscore", "_private", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"leading digit", "1col", true},
		{"space", "two words", true},
		{"dot", "a.b", true},
		{"hash", "#main", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdent("element", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePseudo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "hover", false},
		{"with dash", "first-line", false},
		{"functional", "nth-child(2n+1)", false},
		{"functional empty args", "lang()", false},

		{"empty", "", true},
		{"colon prefix", ":hover", true},
		{"double colon prefix", "::before", true},
		{"unbalanced paren", "nth-child(2n", true},
		{"nested parens", "not(is(a))", true},
		{"space", "hov er", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePseudo("pseudo-class", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePseudo(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAttribute(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"bare name", "disabled", false},
		{"exact match", `type="text"`, false},
		{"suffix match", `href$=".png"`, false},
		{"substring match", `class*="col-"`, false},

		{"empty", "", true},
		{"opening bracket", `[href`, true},
		{"closing bracket", `href]`, true},
		{"control char", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttribute(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAttribute(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "main-table", false},
		{"dotted", "layout.sidebar", false},

		{"empty", "", true},
		{"leading dot", ".sidebar", true},
		{"trailing dot", "sidebar.", true},
		{"space", "main table", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
