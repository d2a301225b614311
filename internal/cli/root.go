// Package cli provides the command-line interface for huewheel.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/palette"
	"github.com/jmylchreest/huewheel/internal/version"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	verbose    bool
	theme      themeFlag
	seed       uint64
	noContrast bool
	noLocks    bool
	noOverall  bool
	plain      bool
}

// themeFlag adapts palette.ThemeMode to a pflag.Value.
type themeFlag struct {
	mode palette.ThemeMode
}

var _ pflag.Value = (*themeFlag)(nil)

func (f *themeFlag) String() string { return f.mode.String() }

func (f *themeFlag) Set(s string) error {
	mode, err := palette.ParseThemeMode(s)
	if err != nil {
		return err
	}
	f.mode = mode
	return nil
}

func (f *themeFlag) Type() string { return "theme" }

// NewRootCmd builds the huewheel command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "huewheel",
		Short: "A hue-wheel colour palette generator",
		Long: `huewheel generates six-colour palettes stepping 30° around the hue wheel
from a random starting hue, and scores each swatch's WCAG contrast against a
dark or light background.

Lock the swatches you like, regenerate the rest, and flip between themes in an
interactive session, or print a single palette for scripting.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.VarP(&opts.theme, "theme", "t", "theme type (dark, light)")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible palettes")
	flags.BoolVar(&opts.noContrast, "no-contrast", false, "hide per-swatch contrast scores")
	flags.BoolVar(&opts.noLocks, "no-locks", false, "disable swatch locking")
	flags.BoolVar(&opts.noOverall, "no-overall", false, "hide first-to-last swatch contrast")
	flags.BoolVar(&opts.plain, "plain", false, "disable colour swatch previews")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newSessionCmd(opts),
		newContrastCmd(opts),
		newExportCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// features maps the feature switches to palette.Features.
func (o *rootOptions) features() palette.Features {
	return palette.Features{
		Contrast: !o.noContrast,
		Locks:    !o.noLocks,
		Overall:  !o.noOverall,
	}
}

// logger returns a debug logger on stderr when verbose, otherwise a silent one.
func (o *rootOptions) logger(cmd *cobra.Command) hclog.Logger {
	if o.verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "huewheel",
			Output: cmd.ErrOrStderr(),
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huewheel",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// builder prepares a palette.Builder from the persistent flags.
func (o *rootOptions) builder(cmd *cobra.Command) *palette.Builder {
	var seed *uint64
	if cmd.Flags().Changed("seed") {
		seed = &o.seed
	}

	return palette.NewBuilder().
		WithSource(colour.NewSource(seed)).
		WithLogger(o.logger(cmd)).
		WithFeatures(o.features()).
		WithTheme(o.theme.mode)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
