package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var (
		startHue int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and print one palette",
		Long: `Generate a six-colour palette and print each swatch with its contrast
against the theme background.

Examples:
  # Random palette
  huewheel generate

  # Fixed starting hue on a light background
  huewheel generate --start-hue 200 --theme light

  # Reproducible random palette as JSON
  huewheel generate --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := opts.builder(cmd)
			if cmd.Flags().Changed("start-hue") {
				b = b.WithStartHue(startHue)
			}
			c := b.Build()
			v := c.View()

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := v.JSON()
				if err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprint(out, newRenderer(out, opts.plain).view(v, c.Features()))
			return nil
		},
	}

	cmd.Flags().IntVar(&startHue, "start-hue", 0, "starting hue in degrees (random if unset)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the palette as JSON")

	return cmd
}
