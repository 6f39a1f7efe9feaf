// Package pkg provides the core libraries for Selcraft selector composition.
//
// # Overview
//
// Selcraft builds CSS selector strings from typed fragments, combines them
// with combinators, and round-trips them through text, TOML manifests, and
// JSON. The pkg directory is organized into these areas:
//
//  1. [selector] - Fragment-by-fragment selector building, combinators, parsing
//  2. [manifest] - TOML manifest loading and rendering of named selector sets
//  3. [viz] - Graphviz rendering of combinator trees
//  4. [jsonio] - JSON serialization of rendered selectors
//  5. [errors] - Structured errors with stable codes
//  6. [geom] - Rectangle geometry for layout-adjacent tooling
//
// # Quick Start
//
// Build a selector one fragment at a time:
//
//	import "github.com/selcraft/selcraft/pkg/selector"
//
//	b := selector.Element("table").ID("data").Class("wide")
//	text, err := b.Render() // "table#data.wide"
//
// Combine two selectors:
//
//	link := selector.Element("a").PseudoClass("hover")
//	c := selector.Combine(b, selector.Child, link)
//	text, err = c.Render() // "table#data.wide > a:hover"
//
// Parse existing selector text back into a tree:
//
//	r, err := selector.Parse("ul > li:first-child")
//
// # Main Packages
//
// [selector] - The building blocks. A [selector.Builder] accumulates
// fragments (element, id, classes, attribute, pseudo-classes,
// pseudo-element) and enforces uniqueness and ordering at mutation time.
// [selector.Combinator] joins two renderables with a combinator symbol.
// [selector.Parse] turns selector text back into a combinator tree.
//
// [manifest] - Declarative selector sets. A TOML file lists named selector
// definitions and named combinations; [manifest.Load] builds them all and
// reports the first definition that violates a building rule.
//
// [viz] - Combinator trees as diagrams. [viz.ToDOT] emits Graphviz DOT,
// [viz.RenderSVG] rasterizes it.
//
// [jsonio] - Serialization helpers for exchanging rendered selectors as
// JSON, both as strings and as files.
//
// [errors] - Error type with stable codes (DUPLICATE_FRAGMENT,
// ORDER_VIOLATION, INVALID_SELECTOR, ...) plus input validators shared by
// the manifest loader.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/selector/... # Specific package
//	go test -run Example       # Examples only
//
// [selector]: https://pkg.go.dev/github.com/selcraft/selcraft/pkg/selector
// [manifest]: https://pkg.go.dev/github.com/selcraft/selcraft/pkg/manifest
// [viz]: https://pkg.go.dev/github.com/selcraft/selcraft/pkg/viz
// [jsonio]: https://pkg.go.dev/github.com/selcraft/selcraft/pkg/jsonio
// [errors]: https://pkg.go.dev/github.com/selcraft/selcraft/pkg/errors
// [geom]: https://pkg.go.dev/github.com/selcraft/selcraft/pkg/geom
package pkg
