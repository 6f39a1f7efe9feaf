package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selcraft/selcraft/pkg/errors"
	"github.com/selcraft/selcraft/pkg/selector"
)

// checkCommand creates the check command for validating selector strings.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <selector>...",
		Short: "Validate selector strings and print their canonical form",
		Long: `Check parses each selector string, applies the category-order rules,
and prints the canonical rendering. Selectors that violate the rules
(duplicate fragments, out-of-order fragments, unparsable text) are
reported with their error code.

Examples:
  selcraft check 'a[href$=".png"]:focus'
  selcraft check 'div#main + table#data' 'ul > li'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			failed := 0
			for _, text := range args {
				canonical, err := checkOne(text)
				if err != nil {
					failed++
					logger.Debugf("check %q: %v", text, err)
					printError("%s: [%s] %s", text, errors.GetCode(err), errors.UserMessage(err))
					continue
				}
				printSuccess("%s", canonical)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d selectors invalid", failed, len(args))
			}
			return nil
		},
	}
}

// checkOne parses and re-renders a single selector string.
func checkOne(text string) (string, error) {
	r, err := selector.Parse(text)
	if err != nil {
		return "", err
	}
	return r.Render()
}
