package selector

import (
	"testing"

	"github.com/selcraft/selcraft/pkg/errors"
)

func TestRenderSingleCategory(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
		want  string
	}{
		{"element", func() *Builder { return Element("div") }, "div"},
		{"id", func() *Builder { return ID("main") }, "#main"},
		{"class", func() *Builder { return Class("wide") }, ".wide"},
		{"attribute", func() *Builder { return Attr(`type="text"`) }, `[type="text"]`},
		{"pseudo-class", func() *Builder { return PseudoClass("hover") }, ":hover"},
		{"pseudo-element", func() *Builder { return PseudoElement("first-line") }, "::first-line"},
		{"empty builder", func() *Builder { return new(Builder) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build().Render()
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFullChain(t *testing.T) {
	got, err := Element("a").
		ID("top").
		Class("nav").
		Class("active").
		Attr(`href$=".png"`).
		PseudoClass("focus").
		PseudoElement("first-letter").
		Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Attribute renders before classes even though classes must be
	// added first.
	want := `a#top[href$=".png"].nav.active:focus::first-letter`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderOrderIsFixed(t *testing.T) {
	// Call order class-then-attribute, render order attribute-then-class.
	got, err := Element("a").Class("c").Attr("x").Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "a[x].c" {
		t.Errorf("Render() = %q, want %q", got, "a[x].c")
	}
}

func TestClassesKeepOrderWithoutDedup(t *testing.T) {
	got, err := Class("a").Class("b").Class("a").Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != ".a.b.a" {
		t.Errorf("Render() = %q, want %q", got, ".a.b.a")
	}
}

func TestAttrOverwrites(t *testing.T) {
	got, err := Attr("draggable").Attr(`href^="https"`).Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != `[href^="https"]` {
		t.Errorf("Render() = %q, want %q", got, `[href^="https"]`)
	}
}

func TestDuplicateFragment(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
	}{
		{"element twice", func() *Builder { return Element("div").Element("span") }},
		{"id twice", func() *Builder { return ID("a").ID("b") }},
		{"pseudo-element twice", func() *Builder { return PseudoElement("before").PseudoElement("after") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			_, err := b.Render()
			if err == nil {
				t.Fatal("Render should fail")
			}
			if !errors.Is(err, errors.ErrCodeDuplicateFragment) {
				t.Errorf("code = %v, want DUPLICATE_FRAGMENT", errors.GetCode(err))
			}
		})
	}
}

func TestOrderViolation(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
	}{
		{"element after id", func() *Builder { return ID("main").Element("div") }},
		{"id after class", func() *Builder { return Class("a").ID("main") }},
		{"id after pseudo-element", func() *Builder { return PseudoElement("before").ID("main") }},
		{"class after attribute", func() *Builder { return Attr("x").Class("a") }},
		{"attribute after pseudo-class", func() *Builder { return PseudoClass("hover").Attr("x") }},
		{"pseudo-class after pseudo-element", func() *Builder { return PseudoElement("before").PseudoClass("hover") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			_, err := b.Render()
			if err == nil {
				t.Fatal("Render should fail")
			}
			if !errors.Is(err, errors.ErrCodeOrderViolation) {
				t.Errorf("code = %v, want ORDER_VIOLATION", errors.GetCode(err))
			}
		})
	}
}

func TestStickyError(t *testing.T) {
	b := ID("main").Element("div")
	first := b.Err()
	if first == nil {
		t.Fatal("expected recorded error")
	}

	// Later mutations are no-ops and do not replace the first error.
	b.Class("a").PseudoElement("before").PseudoElement("after")
	if b.Err() != first {
		t.Errorf("Err() = %v, want first recorded error %v", b.Err(), first)
	}

	if _, err := b.Render(); err != first {
		t.Errorf("Render error = %v, want %v", err, first)
	}
}

func TestRenderIdempotent(t *testing.T) {
	b := Element("table").ID("data").Class("wide")
	first, err := b.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := b.Render()
	if err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if first != second {
		t.Errorf("renders differ: %q vs %q", first, second)
	}
}

func TestEmpty(t *testing.T) {
	if !new(Builder).Empty() {
		t.Error("zero builder should be empty")
	}
	if Element("div").Empty() {
		t.Error("builder with element should not be empty")
	}
}

func TestFragmentsSnapshot(t *testing.T) {
	b := Element("a").ID("top").Class("nav").Attr(`href^="https"`).PseudoClass("hover")

	f := b.Fragments()
	if f.Element != "a" || f.ID != "top" || f.Attribute != `href^="https"` {
		t.Errorf("unexpected snapshot: %+v", f)
	}
	if len(f.Classes) != 1 || f.Classes[0] != "nav" {
		t.Errorf("Classes = %v, want [nav]", f.Classes)
	}
	if len(f.PseudoClasses) != 1 || f.PseudoClasses[0] != "hover" {
		t.Errorf("PseudoClasses = %v, want [hover]", f.PseudoClasses)
	}

	// The snapshot is detached from the builder.
	f.Classes[0] = "changed"
	got, err := b.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != `a#top[href^="https"].nav:hover` {
		t.Errorf("Render = %q after mutating snapshot", got)
	}
}
