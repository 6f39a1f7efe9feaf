package selector

import (
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/selcraft/selcraft/pkg/errors"
)

// Parse decomposes a CSS selector string into the equivalent Builder or
// Combinator tree, applying the same category-order rules as hand-built
// chains. Selector text whose source order violates those rules fails
// with ORDER_VIOLATION or DUPLICATE_FRAGMENT exactly as the builder
// would; text that cannot be decomposed at all fails with
// INVALID_SELECTOR.
//
// Rendering the returned tree yields the canonical spelling of the
// input: combinator symbols padded to single spaces, category order
// normalized to the fixed render order.
func Parse(text string) (Renderer, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.New(errors.ErrCodeInvalidSelector, "empty selector")
	}

	toks, err := lex(trimmed)
	if err != nil {
		return nil, err
	}

	compounds, symbols, err := splitCompounds(toks)
	if err != nil {
		return nil, err
	}

	result, err := buildCompound(compounds[0])
	if err != nil {
		return nil, err
	}
	var tree Renderer = result
	for i, sym := range symbols {
		right, err := buildCompound(compounds[i+1])
		if err != nil {
			return nil, err
		}
		tree = Combine(tree, sym, right)
	}
	return tree, nil
}

// token is a lexed CSS token with its raw text.
type token struct {
	tt   css.TokenType
	data string
}

// lex tokenizes selector text, dropping comments.
func lex(text string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(text))
	var toks []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, errors.Wrap(errors.ErrCodeInvalidSelector, err, "tokenize %q", text)
			}
			return toks, nil
		case css.CommentToken:
			// skip
		default:
			toks = append(toks, token{tt, string(data)})
		}
	}
}

// combinatorFor maps a top-level delim token to a combinator symbol.
func combinatorFor(data string) (Symbol, bool) {
	switch data {
	case "+":
		return Plus, true
	case "~":
		return Tilde, true
	case ">":
		return Child, true
	}
	return "", false
}

// splitCompounds partitions the token stream into compound selector
// groups separated by combinators. Whitespace between compounds is the
// descendant combinator unless an explicit symbol adjoins it. Bracket
// and parenthesis groups are opaque: whitespace and delims inside them
// never split a compound.
func splitCompounds(toks []token) ([][]token, []Symbol, error) {
	var (
		compounds [][]token
		symbols   []Symbol
		current   []token
		depth     int
		pending   *Symbol // explicit combinator waiting for its right side
		sawSpace  bool
	)

	flush := func() error {
		if len(current) == 0 {
			return errors.New(errors.ErrCodeInvalidSelector, "combinator missing left-hand selector")
		}
		compounds = append(compounds, current)
		current = nil
		return nil
	}

	for _, t := range toks {
		if depth > 0 {
			current = append(current, t)
			switch t.tt {
			case css.LeftBracketToken, css.LeftParenthesisToken, css.FunctionToken:
				depth++
			case css.RightBracketToken, css.RightParenthesisToken:
				depth--
			}
			continue
		}

		if t.tt == css.WhitespaceToken {
			sawSpace = true
			continue
		}
		if sym, ok := combinatorFor(t.data); ok && t.tt == css.DelimToken {
			if pending != nil {
				return nil, nil, errors.New(errors.ErrCodeInvalidSelector, "consecutive combinators")
			}
			if err := flush(); err != nil {
				return nil, nil, err
			}
			s := sym
			pending = &s
			sawSpace = false
			continue
		}

		// Start of a new compound after a separator.
		if pending != nil {
			symbols = append(symbols, *pending)
			pending = nil
		} else if sawSpace && len(current) > 0 {
			// Bare whitespace between compounds is the descendant combinator.
			compounds = append(compounds, current)
			current = nil
			symbols = append(symbols, Descendant)
		}
		sawSpace = false

		current = append(current, t)
		switch t.tt {
		case css.LeftBracketToken, css.LeftParenthesisToken, css.FunctionToken:
			depth++
		}
	}

	if depth > 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidSelector, "unterminated bracket or parenthesis group")
	}
	if pending != nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidSelector, "combinator missing right-hand selector")
	}
	if err := flush(); err != nil {
		return nil, nil, err
	}
	if len(compounds) != len(symbols)+1 {
		return nil, nil, errors.New(errors.ErrCodeInternal, "compound/combinator count mismatch")
	}
	return compounds, symbols, nil
}

// buildCompound replays one compound selector's tokens through a
// Builder, so parsed text is subject to the same ordering and
// uniqueness rules as hand-built chains.
func buildCompound(toks []token) (*Builder, error) {
	b := new(Builder)
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.tt {
		case css.IdentToken:
			if i != 0 {
				return nil, errors.New(errors.ErrCodeInvalidSelector, "unexpected identifier %q", t.data)
			}
			b.Element(t.data)

		case css.HashToken:
			b.ID(strings.TrimPrefix(t.data, "#"))

		case css.DelimToken:
			if t.data != "." {
				return nil, errors.New(errors.ErrCodeInvalidSelector, "unexpected %q", t.data)
			}
			if i+1 >= len(toks) || toks[i+1].tt != css.IdentToken {
				return nil, errors.New(errors.ErrCodeInvalidSelector, "class marker without a name")
			}
			i++
			b.Class(toks[i].data)

		case css.LeftBracketToken:
			body, next, err := collectGroup(toks, i+1, css.LeftBracketToken, css.RightBracketToken)
			if err != nil {
				return nil, err
			}
			b.Attr(body)
			i = next

		case css.ColonToken:
			pseudoElement := false
			if i+1 < len(toks) && toks[i+1].tt == css.ColonToken {
				pseudoElement = true
				i++
			}
			value, next, err := pseudoName(toks, i+1)
			if err != nil {
				return nil, err
			}
			i = next
			if pseudoElement {
				b.PseudoElement(value)
			} else {
				b.PseudoClass(value)
			}

		default:
			return nil, errors.New(errors.ErrCodeInvalidSelector, "unexpected token %q", t.data)
		}

		if err := b.Err(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// collectGroup concatenates raw token text from start until the
// matching close token, returning the body and the index of the close.
func collectGroup(toks []token, start int, open, close css.TokenType) (string, int, error) {
	var sb strings.Builder
	depth := 1
	for i := start; i < len(toks); i++ {
		switch toks[i].tt {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return sb.String(), i, nil
			}
		}
		sb.WriteString(toks[i].data)
	}
	return "", 0, errors.New(errors.ErrCodeInvalidSelector, "unterminated group")
}

// pseudoName reads a pseudo-class or pseudo-element name starting at
// index i: either a plain identifier or functional notation whose
// argument tokens are concatenated verbatim. Returns the value and the
// index of its last token.
func pseudoName(toks []token, i int) (string, int, error) {
	if i >= len(toks) {
		return "", 0, errors.New(errors.ErrCodeInvalidSelector, "colon without a pseudo name")
	}
	switch toks[i].tt {
	case css.IdentToken:
		return toks[i].data, i, nil
	case css.FunctionToken:
		// Function token text includes the opening parenthesis.
		body, next, err := collectGroup(toks, i+1, css.LeftParenthesisToken, css.RightParenthesisToken)
		if err != nil {
			return "", 0, err
		}
		return toks[i].data + body + ")", next, nil
	}
	return "", 0, errors.New(errors.ErrCodeInvalidSelector, "invalid pseudo name %q", toks[i].data)
}
