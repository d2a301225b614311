package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/palette"
)

const meterCells = 20

// renderer draws palette views as text, optionally with truecolour swatches.
type renderer struct {
	styled bool
	lg     *lipgloss.Renderer
}

// newRenderer styles output only when w is a terminal and plain is false.
func newRenderer(w io.Writer, plain bool) *renderer {
	return &renderer{
		styled: !plain && isTerminal(w),
		lg:     lipgloss.NewRenderer(w),
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch renders hex as a solid block with readable text, or the bare hex.
func (r *renderer) swatch(hex string) string {
	if !r.styled {
		return hex
	}
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return hex
	}
	return r.lg.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(colour.ReadableText(rgb).Hex())).
		Bold(true).
		Padding(0, 1).
		Render(hex)
}

// meter renders a contrast bar of meterCells cells.
func (r *renderer) meter(score colour.Score) string {
	filled := (score.BarWidth*meterCells + 50) / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterCells-filled)
	if !r.styled {
		return bar
	}
	return r.lg.NewStyle().Foreground(lipgloss.Color(score.Rating.BarColour())).Render(bar)
}

// view renders the full session view.
func (r *renderer) view(v palette.View, features palette.Features) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Theme: %s (background %s, text %s)\n", v.Theme, v.Background, v.Text)
	fmt.Fprintf(&b, "Start hue: %d°\n\n", v.StartHue)

	headers := []string{"#", "HSL", "HEX"}
	if features.Locks {
		headers = append(headers, "LOCK")
	}
	if features.Contrast {
		headers = append(headers, "CONTRAST", "RATING", "BAR")
	}

	table := NewTable(headers)
	for _, s := range v.Swatches {
		row := []string{strconv.Itoa(s.Index), s.HSL, r.swatch(s.Hex)}
		if features.Locks {
			row = append(row, lockLabel(s.Locked))
		}
		if s.Contrast != nil {
			row = append(row, s.Contrast.String(), s.Contrast.Rating.String(), r.meter(*s.Contrast))
		}
		table.AddRow(row)
	}
	b.WriteString(table.Render())

	if v.Overall != nil {
		first, last := v.Swatches[0], v.Swatches[len(v.Swatches)-1]
		fmt.Fprintf(&b, "\nOverall contrast (%s vs %s): %s  %s  %s\n",
			first.Hex, last.Hex, v.Overall, v.Overall.Rating, r.meter(*v.Overall))
	}

	return b.String()
}

// score renders a single contrast comparison.
func (r *renderer) score(hexA, hexB string, s colour.Score) string {
	return fmt.Sprintf("%s vs %s\nContrast: %s (%s)\n%s %d%%\n",
		r.swatch(hexA), r.swatch(hexB), s, s.Rating, r.meter(s), s.BarWidth)
}

func lockLabel(locked bool) string {
	if locked {
		return "locked"
	}
	return "-"
}
