package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selcraft/selcraft/pkg/jsonio"
	"github.com/selcraft/selcraft/pkg/manifest"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string // JSON output file path (print only if empty)
}

// buildCommand creates the build command for rendering manifest selectors.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <manifest.toml>",
		Short: "Render every selector defined in a TOML manifest",
		Long: `Build renders every selector and combinator defined in a TOML manifest.

Example manifest:

  [[selector]]
  name = "main-table"
  element = "table"
  id = "data"

  [[combine]]
  name = "table-row"
  left = "main-table"
  symbol = ">"
  right = "main-table"

Examples:
  selcraft build selectors.toml
  selcraft build selectors.toml -o selectors.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write rendered selectors to a JSON file")

	return cmd
}

// runBuild loads the manifest, renders every definition, and prints or
// exports the result.
func runBuild(cmd *cobra.Command, path string, opts buildOpts) error {
	logger := loggerFromContext(cmd.Context())
	logger.Debugf("Loading manifest %s", path)

	prog := newProgress(logger)
	set, err := manifest.Load(path)
	if err != nil {
		return err
	}

	rendered, err := set.Render()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built %d selectors", len(rendered)))

	for _, r := range rendered {
		printSelector(r.Name, r.Selector)
	}

	if opts.output == "" {
		return nil
	}

	entries := make([]jsonio.Entry, len(rendered))
	for i, r := range rendered {
		entries[i] = jsonio.Entry{Name: r.Name, Selector: r.Selector}
	}
	if err := jsonio.ExportFile(entries, opts.output); err != nil {
		return err
	}
	printFile(opts.output)
	return nil
}
