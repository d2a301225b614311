package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/palette"
)

const sessionHelp = `Actions:
  generate, g        regenerate unlocked swatches
  lock N, l N        toggle the lock on swatch N (0-5)
  theme, t           toggle dark/light theme
  export, e [FMT]    export the palette (not implemented)
  show, s            redraw the palette
  json               print the palette as JSON
  help, h, ?         show this help
  quit, q            leave the session
`

func newSessionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactively lock, regenerate and theme a palette",
		Long: `Start an interactive palette session. Actions are read one per line from
standard input and the palette is redrawn after every change.

` + sessionHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &session{
				ctrl:    opts.builder(cmd).Build(),
				out:     cmd.OutOrStdout(),
				render:  newRenderer(cmd.OutOrStdout(), opts.plain),
				prompt:  isTerminal(cmd.InOrStdin()),
				verbose: opts.verbose,
			}
			return s.run(cmd.InOrStdin())
		},
	}
}

// session applies line-oriented actions to a palette controller.
type session struct {
	ctrl    *palette.Controller
	out     io.Writer
	render  *renderer
	prompt  bool
	verbose bool
}

func (s *session) run(in io.Reader) error {
	s.show()

	scanner := bufio.NewScanner(in)
	for {
		if s.prompt {
			fmt.Fprint(s.out, "huewheel> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := s.handle(scanner.Text()); quit {
			return nil
		}
	}
}

// handle applies one action line. It reports whether the session should end.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch strings.ToLower(fields[0]) {
	case "generate", "g":
		start := s.ctrl.Regenerate()
		if s.verbose {
			fmt.Fprintf(s.out, "✓ Regenerated from hue %d°\n", start)
		}
		s.show()

	case "lock", "l":
		s.toggleLock(arg)

	case "theme", "t":
		fmt.Fprintf(s.out, "✓ Theme: %s\n", s.ctrl.ToggleTheme())
		s.show()

	case "export", "e":
		if err := s.ctrl.Export(arg); err != nil {
			fmt.Fprintf(s.out, "✗ %v\n", err)
		}

	case "show", "s":
		s.show()

	case "json":
		data, err := s.ctrl.View().JSON()
		if err != nil {
			fmt.Fprintf(s.out, "✗ failed to encode palette: %v\n", err)
			return false
		}
		fmt.Fprintln(s.out, string(data))

	case "help", "h", "?":
		fmt.Fprint(s.out, sessionHelp)

	case "quit", "q", "exit":
		return true

	default:
		fmt.Fprintf(s.out, "✗ Unknown action %q (type help for a list)\n", fields[0])
	}

	return false
}

func (s *session) toggleLock(arg string) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(s.out, "✗ lock needs a swatch index 0-%d\n", colour.SwatchCount-1)
		return
	}
	if err := s.ctrl.ToggleLock(i); err != nil {
		fmt.Fprintf(s.out, "✗ %v\n", err)
		return
	}

	state := "unlocked"
	if s.ctrl.Locks()[i] {
		state = "locked"
	}
	fmt.Fprintf(s.out, "✓ Swatch %d %s\n", i, state)
	s.show()
}

func (s *session) show() {
	fmt.Fprint(s.out, s.render.view(s.ctrl.View(), s.ctrl.Features()))
}
