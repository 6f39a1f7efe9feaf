package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/selcraft/selcraft/pkg/errors"
	"github.com/selcraft/selcraft/pkg/manifest"
	"github.com/selcraft/selcraft/pkg/viz"
)

// Output formats for the viz command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// vizOpts holds the command-line flags for the viz command.
type vizOpts struct {
	format string // "dot" or "svg"
	output string // output file path (stdout if empty)
}

// vizCommand creates the viz command for combinator tree visualization.
func (c *CLI) vizCommand() *cobra.Command {
	opts := vizOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "viz <manifest.toml> <name>",
		Short: "Emit a Graphviz view of a manifest combinator tree",
		Long: `Viz draws the combinator tree of one named definition from a TOML
manifest. Leaf selectors are shown with their rendered text, combinator
nodes with their symbol.

Examples:
  selcraft viz selectors.toml table-link
  selcraft viz selectors.toml table-link --format svg -o tree.svg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViz(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format (dot, svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runViz renders the named definition's combinator tree.
func runViz(cmd *cobra.Command, path, name string, opts vizOpts) error {
	logger := loggerFromContext(cmd.Context())

	set, err := manifest.Load(path)
	if err != nil {
		return err
	}

	r, ok := set.Get(name)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "no definition named %q in %s", name, path)
	}

	dot, err := viz.ToDOT(r)
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		prog := newProgress(logger)
		data, err = viz.RenderSVG(dot)
		if err != nil {
			return err
		}
		prog.done("Rendered SVG")
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (available: %s, %s)", opts.format, formatDOT, formatSVG)
	}

	if opts.output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printFile(opts.output)
	return nil
}
