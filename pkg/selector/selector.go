package selector

import (
	"strings"

	"github.com/selcraft/selcraft/pkg/errors"
)

// Renderer is the capability of producing a final selector string.
// It is implemented by *Builder (leaf selectors) and *Combinator
// (composites), allowing combinators to nest arbitrarily deep.
type Renderer interface {
	Render() (string, error)
}

// Builder accumulates typed selector fragments and renders them as a
// CSS selector string. The zero value is ready to use; the package-level
// facade functions ([Element], [ID], ...) are the usual entry points.
//
// Fragment categories transition from unset to set (or append, for the
// class and pseudo-class sequences) and never back. Rendering causes no
// transition: calling Render twice without further mutation yields
// identical results.
type Builder struct {
	element       string
	id            string
	attribute     string
	pseudoElement string

	hasElement       bool
	hasID            bool
	hasAttribute     bool
	hasPseudoElement bool

	classes       []string
	pseudoClasses []string

	err error
}

// Element sets the element (tag) fragment. It fails with
// DUPLICATE_FRAGMENT if the element is already set, or with
// ORDER_VIOLATION if the id has already been set.
func (b *Builder) Element(value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.hasElement {
		b.err = errors.New(errors.ErrCodeDuplicateFragment, "element already set")
		return b
	}
	if b.hasID {
		b.err = errors.New(errors.ErrCodeOrderViolation, "element must be set before id")
		return b
	}
	b.element = value
	b.hasElement = true
	return b
}

// ID sets the id fragment. It fails with DUPLICATE_FRAGMENT if the id is
// already set, or with ORDER_VIOLATION if any class has been added or
// the pseudo-element has been set.
func (b *Builder) ID(value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.hasID {
		b.err = errors.New(errors.ErrCodeDuplicateFragment, "id already set")
		return b
	}
	if len(b.classes) > 0 {
		b.err = errors.New(errors.ErrCodeOrderViolation, "id must be set before classes")
		return b
	}
	if b.hasPseudoElement {
		b.err = errors.New(errors.ErrCodeOrderViolation, "id must be set before pseudo-element")
		return b
	}
	b.id = value
	b.hasID = true
	return b
}

// Class appends a class fragment. Classes keep their append order and
// are not deduplicated. It fails with ORDER_VIOLATION if the attribute
// has already been set.
func (b *Builder) Class(value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.hasAttribute {
		b.err = errors.New(errors.ErrCodeOrderViolation, "classes must be added before attribute")
		return b
	}
	b.classes = append(b.classes, value)
	return b
}

// Attr sets the attribute fragment (the text between the square
// brackets). A repeated call overwrites the previous value. It fails
// with ORDER_VIOLATION if any pseudo-class has already been added.
func (b *Builder) Attr(value string) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.pseudoClasses) > 0 {
		b.err = errors.New(errors.ErrCodeOrderViolation, "attribute must be set before pseudo-classes")
		return b
	}
	b.attribute = value
	b.hasAttribute = true
	return b
}

// PseudoClass appends a pseudo-class fragment in call order. It fails
// with ORDER_VIOLATION if the pseudo-element has already been set.
func (b *Builder) PseudoClass(value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.hasPseudoElement {
		b.err = errors.New(errors.ErrCodeOrderViolation, "pseudo-classes must be added before pseudo-element")
		return b
	}
	b.pseudoClasses = append(b.pseudoClasses, value)
	return b
}

// PseudoElement sets the pseudo-element fragment. It fails with
// DUPLICATE_FRAGMENT if already set.
func (b *Builder) PseudoElement(value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.hasPseudoElement {
		b.err = errors.New(errors.ErrCodeDuplicateFragment, "pseudo-element already set")
		return b
	}
	b.pseudoElement = value
	b.hasPseudoElement = true
	return b
}

// Err returns the first rule violation recorded on the builder, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Render produces the selector string. The fragment categories are
// concatenated in a fixed order regardless of call order: element, #id,
// [attribute], .classes, :pseudo-classes, ::pseudo-element.
//
// Note that the attribute renders before the classes even though the
// mutation gating requires classes to be added first. The mismatch is
// intentional and must not be "fixed" by reordering.
//
// If a rule violation was recorded during construction, Render returns
// it and an empty string.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	var sb strings.Builder
	if b.hasElement {
		sb.WriteString(b.element)
	}
	if b.hasID {
		sb.WriteByte('#')
		sb.WriteString(b.id)
	}
	if b.hasAttribute {
		sb.WriteByte('[')
		sb.WriteString(b.attribute)
		sb.WriteByte(']')
	}
	for _, c := range b.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	for _, p := range b.pseudoClasses {
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	if b.hasPseudoElement {
		sb.WriteString("::")
		sb.WriteString(b.pseudoElement)
	}
	return sb.String(), nil
}

// Fragments is a read-only snapshot of a Builder's recorded fragments.
// Unset single-occurrence categories are empty strings.
type Fragments struct {
	Element       string
	ID            string
	Attribute     string
	PseudoElement string
	Classes       []string
	PseudoClasses []string
}

// Fragments returns a snapshot of the recorded fragments. The slices are
// copies, so callers cannot mutate the builder through them.
func (b *Builder) Fragments() Fragments {
	return Fragments{
		Element:       b.element,
		ID:            b.id,
		Attribute:     b.attribute,
		PseudoElement: b.pseudoElement,
		Classes:       append([]string(nil), b.classes...),
		PseudoClasses: append([]string(nil), b.pseudoClasses...),
	}
}

// Empty reports whether no fragment has been recorded yet.
func (b *Builder) Empty() bool {
	return !b.hasElement && !b.hasID && !b.hasAttribute && !b.hasPseudoElement &&
		len(b.classes) == 0 && len(b.pseudoClasses) == 0
}

// =============================================================================
// Facade
// =============================================================================

// Element creates a new Builder with the element fragment set.
func Element(value string) *Builder {
	return new(Builder).Element(value)
}

// ID creates a new Builder with the id fragment set.
func ID(value string) *Builder {
	return new(Builder).ID(value)
}

// Class creates a new Builder with one class fragment added.
func Class(value string) *Builder {
	return new(Builder).Class(value)
}

// Attr creates a new Builder with the attribute fragment set.
func Attr(value string) *Builder {
	return new(Builder).Attr(value)
}

// PseudoClass creates a new Builder with one pseudo-class fragment added.
func PseudoClass(value string) *Builder {
	return new(Builder).PseudoClass(value)
}

// PseudoElement creates a new Builder with the pseudo-element fragment set.
func PseudoElement(value string) *Builder {
	return new(Builder).PseudoElement(value)
}
