package colour

import (
	"fmt"
	"math"
)

const (
	// DefaultSaturation is the saturation, in percent, of generated swatches.
	DefaultSaturation = 70.0
	// DefaultLightness is the lightness, in percent, of generated swatches.
	DefaultLightness = 50.0
)

// HSL is a hue (degrees) with saturation and lightness in percent.
type HSL struct {
	H int     `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// NewHSL returns a swatch colour for hue h at the default saturation and lightness.
func NewHSL(h int) HSL {
	return HSL{H: NormaliseHue(h), S: DefaultSaturation, L: DefaultLightness}
}

// String returns the colour in CSS notation, e.g. "hsl(120, 70%, 50%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %g%%, %g%%)", c.H, c.S, c.L)
}

// RGB converts the colour to 8-bit RGB.
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H, c.S, c.L)
}

// Hex converts the colour to a lowercase "#rrggbb" string.
func (c HSL) Hex() string {
	return c.RGB().Hex()
}

// HSLToRGB converts HSL to RGB colour space.
// h is hue in degrees, s and l are percentages. Out-of-range inputs are
// wrapped (hue) or clamped (saturation, lightness) before conversion.
func HSLToRGB(h int, s, l float64) RGB {
	hue := float64(NormaliseHue(h))
	sf := clamp(s, 0, 100) / 100
	lf := clamp(l, 0, 100) / 100

	a := sf * math.Min(lf, 1-lf)

	// Channel offsets: red 0, green 8, blue 4.
	channel := func(n float64) uint8 {
		k := math.Mod(n+hue/30, 12)
		v := lf - a*clamp(math.Min(k-3, math.Min(9-k, 1)), -1, 1)
		return uint8(clamp(math.Round(255*v), 0, 255))
	}

	return RGB{R: channel(0), G: channel(8), B: channel(4)}
}

// HSLToHex converts HSL directly to a "#rrggbb" string.
func HSLToHex(h int, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
