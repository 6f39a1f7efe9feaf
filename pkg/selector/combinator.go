package selector

import (
	"fmt"

	"github.com/selcraft/selcraft/pkg/errors"
)

// Symbol is one of the four CSS combinator characters joining two
// selectors.
type Symbol string

// Combinator symbols.
const (
	Descendant Symbol = " "
	Plus       Symbol = "+"
	Tilde      Symbol = "~"
	Child      Symbol = ">"
)

// Valid reports whether s is one of the four combinator symbols.
func (s Symbol) Valid() bool {
	switch s {
	case Descendant, Plus, Tilde, Child:
		return true
	}
	return false
}

// ParseSymbol converts a combinator string (as found in manifests or on
// the command line) into a Symbol. The empty string and "space" are
// accepted as spellings of the descendant combinator.
func ParseSymbol(s string) (Symbol, error) {
	switch s {
	case " ", "", "space":
		return Descendant, nil
	case "+":
		return Plus, nil
	case "~":
		return Tilde, nil
	case ">":
		return Child, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown combinator symbol: %q", s)
}

// Combinator joins two renderable selectors with a combinator symbol.
// It is immutable once constructed and implements [Renderer], so the
// result of [Combine] can itself be combined further.
type Combinator struct {
	left   Renderer
	right  Renderer
	symbol Symbol
	err    error
}

// Combine wraps left and right into a new Combinator. Construction
// never fails so combine calls can nest directly; a nil operand or an
// unknown symbol is reported by [Combinator.Render].
func Combine(left Renderer, symbol Symbol, right Renderer) *Combinator {
	c := &Combinator{left: left, right: right, symbol: symbol}
	if left == nil || right == nil {
		c.err = errors.New(errors.ErrCodeInvalidInput, "combine requires two selectors")
		return c
	}
	if !symbol.Valid() {
		c.err = errors.New(errors.ErrCodeInvalidInput, "unknown combinator symbol: %q", string(symbol))
	}
	return c
}

// Left returns the left operand.
func (c *Combinator) Left() Renderer { return c.left }

// Right returns the right operand.
func (c *Combinator) Right() Renderer { return c.right }

// Symbol returns the combinator symbol.
func (c *Combinator) Symbol() Symbol { return c.symbol }

// Render produces "<left> <symbol> <right>" with exactly one space on
// each side of the symbol. For the descendant combinator the symbol is
// itself a space, yielding three spaces between the operands. Errors
// from either operand propagate, left first.
func (c *Combinator) Render() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	l, err := c.left.Render()
	if err != nil {
		return "", err
	}
	r, err := c.right.Render()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", l, string(c.symbol), r), nil
}
