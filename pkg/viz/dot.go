// Package viz renders selector combinator trees as Graphviz diagrams.
//
// A combinator tree is drawn top-down: internal nodes are combinators
// (labelled with the combinator's name), leaves are simple selectors
// (labelled with their rendered text). [ToDOT] produces the DOT source
// and [RenderSVG] rasterizes it with Graphviz.
package viz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/selcraft/selcraft/pkg/errors"
	"github.com/selcraft/selcraft/pkg/selector"
)

// symbolNames maps combinator symbols to display labels.
var symbolNames = map[selector.Symbol]string{
	selector.Descendant: "descendant",
	selector.Plus:       "adjacent +",
	selector.Tilde:      "sibling ~",
	selector.Child:      "child >",
}

// ToDOT converts a renderable selector into Graphviz DOT format.
// Combinator nodes are drawn as ellipses, leaf selectors as boxes
// showing their rendered text.
func ToDOT(r selector.Renderer) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("digraph selector {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	var counter int
	if _, err := writeNode(&buf, r, &counter); err != nil {
		return "", err
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// writeNode emits the DOT statements for one subtree and returns the
// node identifier assigned to its root.
func writeNode(buf *bytes.Buffer, r selector.Renderer, counter *int) (string, error) {
	id := fmt.Sprintf("n%d", *counter)
	*counter++

	switch node := r.(type) {
	case *selector.Combinator:
		label, ok := symbolNames[node.Symbol()]
		if !ok {
			label = string(node.Symbol())
		}
		fmt.Fprintf(buf, "  %s [label=%q, shape=ellipse];\n", id, label)

		left, err := writeNode(buf, node.Left(), counter)
		if err != nil {
			return "", err
		}
		right, err := writeNode(buf, node.Right(), counter)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(buf, "  %s -> %s;\n", id, left)
		fmt.Fprintf(buf, "  %s -> %s;\n", id, right)

	case *selector.Builder:
		text, err := node.Render()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(buf, "  %s [label=%q, shape=box, style=\"rounded,filled\", fillcolor=white, tooltip=%q];\n",
			id, text, fragmentSummary(node.Fragments()))

	default:
		text, err := r.Render()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(buf, "  %s [label=%q, shape=box, style=\"rounded,filled\", fillcolor=white];\n", id, text)
	}

	return id, nil
}

// fragmentSummary describes a leaf's fragments by category for the node
// tooltip, so hovering an SVG leaf shows how the selector was assembled.
func fragmentSummary(f selector.Fragments) string {
	var parts []string
	if f.Element != "" {
		parts = append(parts, "element="+f.Element)
	}
	if f.ID != "" {
		parts = append(parts, "id="+f.ID)
	}
	if f.Attribute != "" {
		parts = append(parts, "attribute="+f.Attribute)
	}
	if len(f.Classes) > 0 {
		parts = append(parts, "classes="+strings.Join(f.Classes, ","))
	}
	if len(f.PseudoClasses) > 0 {
		parts = append(parts, "pseudo-classes="+strings.Join(f.PseudoClasses, ","))
	}
	if f.PseudoElement != "" {
		parts = append(parts, "pseudo-element="+f.PseudoElement)
	}
	if len(parts) == 0 {
		return "no fragments"
	}
	return strings.Join(parts, " ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return buf.Bytes(), nil
}
