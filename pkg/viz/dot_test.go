package viz

import (
	"strings"
	"testing"

	"github.com/selcraft/selcraft/pkg/selector"
)

func TestToDOTLeaf(t *testing.T) {
	dot, err := ToDOT(selector.Element("table").ID("data"))
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	if !strings.HasPrefix(dot, "digraph selector {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	if !strings.Contains(dot, `label="table#data"`) {
		t.Errorf("missing leaf label:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("leaf graph should have no edges:\n%s", dot)
	}
}

func TestToDOTCombinator(t *testing.T) {
	tree := selector.Combine(
		selector.Combine(selector.Element("ul"), selector.Child, selector.Element("li")),
		selector.Tilde,
		selector.Element("a"),
	)

	dot, err := ToDOT(tree)
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	for _, want := range []string{
		`label="sibling ~"`,
		`label="child >"`,
		`label="ul"`,
		`label="li"`,
		`label="a"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s:\n%s", want, dot)
		}
	}

	// Two combinators contribute two edges each.
	if got := strings.Count(dot, "->"); got != 4 {
		t.Errorf("edge count = %d, want 4:\n%s", got, dot)
	}
}

func TestToDOTPropagatesErrors(t *testing.T) {
	bad := selector.ID("a").ID("b")
	if _, err := ToDOT(bad); err == nil {
		t.Error("ToDOT of an invalid builder should fail")
	}
}

func TestToDOTLeafTooltip(t *testing.T) {
	b := selector.Element("a").ID("top").Class("nav").Class("active").PseudoClass("hover")

	dot, err := ToDOT(b)
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	want := `tooltip="element=a id=top classes=nav,active pseudo-classes=hover"`
	if !strings.Contains(dot, want) {
		t.Errorf("DOT missing %s:\n%s", want, dot)
	}
}

func TestFragmentSummary(t *testing.T) {
	tests := []struct {
		name string
		b    *selector.Builder
		want string
	}{
		{
			name: "all categories",
			b: selector.Element("table").ID("data").Class("wide").
				Attr(`border="1"`).PseudoClass("focus").PseudoElement("first-line"),
			want: `element=table id=data attribute=border="1" classes=wide pseudo-classes=focus pseudo-element=first-line`,
		},
		{
			name: "single category",
			b:    selector.Class("nav"),
			want: "classes=nav",
		},
		{
			name: "zero builder",
			b:    new(selector.Builder),
			want: "no fragments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fragmentSummary(tt.b.Fragments()); got != tt.want {
				t.Errorf("fragmentSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
