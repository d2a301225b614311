package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
)

func newContrastCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast HEX_A HEX_B",
		Short: "Score the contrast between two hex colours",
		Long: `Print the WCAG contrast ratio between two colours, its rating
(pass AAA at 7:1, pass AA at 4.5:1, otherwise fail) and a meter.

Examples:
  huewheel contrast '#d92626' '#121212'
  huewheel contrast fff 000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := colour.ParseHex(args[0])
			if err != nil {
				return err
			}
			b, err := colour.ParseHex(args[1])
			if err != nil {
				return err
			}

			opts.logger(cmd).Debug("scoring contrast", "a", a.Hex(), "b", b.Hex())

			out := cmd.OutOrStdout()
			fmt.Fprint(out, newRenderer(out, opts.plain).score(a.Hex(), b.Hex(), colour.NewScore(a, b)))
			return nil
		},
	}
}
