// Package selector builds CSS selector strings from typed fragments.
//
// # Overview
//
// A [Builder] accumulates selector fragments (element, id, classes,
// attribute, pseudo-classes, pseudo-element) and renders them as a CSS
// selector string. Fragments must be added in the canonical CSS category
// order; violations are caught at mutation time rather than producing an
// invalid selector silently.
//
// # Chaining and Errors
//
// Every mutator returns the same *Builder so chains read like the
// selector they produce:
//
//	s, err := selector.Element("a").
//	    Attr(`href$=".png"`).
//	    PseudoClass("focus").
//	    Render()
//	// s == `a[href$=".png"]:focus`
//
// The first rule violation is recorded on the builder and surfaced by
// [Builder.Render] (or [Builder.Err]); later mutations on a failed
// builder are no-ops. Two violation kinds exist:
//
//   - DUPLICATE_FRAGMENT: a single-occurrence fragment (element, id,
//     pseudo-element) was set a second time.
//   - ORDER_VIOLATION: a fragment was added after a later-category
//     fragment had already been recorded.
//
// Both are [errors.Error] values from this module's errors package and
// can be tested with errors.Is(err, errors.ErrCodeOrderViolation).
//
// # Combinators
//
// [Combine] joins two renderable selectors with a combinator symbol
// (descendant space, '+', '~', '>') into a new [Renderer], nesting to
// arbitrary depth:
//
//	s, _ := selector.Combine(
//	    selector.Element("div").ID("main"),
//	    selector.Plus,
//	    selector.Element("table").ID("data"),
//	).Render()
//	// s == "div#main + table#data"
//
// # Ordering Quirk
//
// The rendered category order places the attribute before the classes,
// while the mutation gating treats classes as preceding the attribute
// (Class fails once Attr has been called). This mismatch is deliberate
// and preserved; see [Builder.Render].
//
// # Concurrency
//
// A Builder is owned by the call chain that constructs it and is not
// safe for concurrent use. A Combinator is immutable once constructed.
package selector
