package palette

import (
	"encoding/json"

	"github.com/jmylchreest/huewheel/internal/colour"
)

// SwatchView is the display data for one swatch.
type SwatchView struct {
	Index    int           `json:"index"`
	HSL      string        `json:"hsl"`
	Hex      string        `json:"hex"`
	Locked   bool          `json:"locked"`
	Contrast *colour.Score `json:"contrast,omitempty"`
}

// View is everything a presentation layer needs to draw the session.
// It is derived from Controller state and never stored.
type View struct {
	Theme      ThemeMode     `json:"theme"`
	Background string        `json:"background"`
	Text       string        `json:"text"`
	StartHue   int           `json:"start_hue"`
	Swatches   []SwatchView  `json:"swatches"`
	Overall    *colour.Score `json:"overall,omitempty"`
}

// View derives the display model from the current state.
func (c *Controller) View() View {
	bg := colour.MustParseHex(c.theme.Background())

	v := View{
		Theme:      c.theme,
		Background: c.theme.Background(),
		Text:       c.theme.Text(),
		StartHue:   c.start,
		Swatches:   make([]SwatchView, colour.SwatchCount),
	}

	for i, s := range c.swatches {
		sv := SwatchView{
			Index:  i,
			HSL:    s.String(),
			Hex:    s.Hex(),
			Locked: c.locks[i],
		}
		if c.features.Contrast {
			score := colour.NewScore(s.RGB(), bg)
			sv.Contrast = &score
		}
		v.Swatches[i] = sv
	}

	if c.features.Overall {
		first, last := c.swatches[0], c.swatches[colour.SwatchCount-1]
		score := colour.NewScore(first.RGB(), last.RGB())
		v.Overall = &score
	}

	return v
}

// JSON renders the view as indented JSON.
func (v View) JSON() ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
