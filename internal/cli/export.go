package cli

import (
	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export the palette as a document (not implemented)",
		Long: `Export is a placeholder. It always fails with a "not implemented"
error naming the requested format (pdf by default).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := ""
			if len(args) == 1 {
				format = args[0]
			}
			return opts.builder(cmd).Build().Export(format)
		},
	}
}
