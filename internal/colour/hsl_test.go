package colour

import (
	"regexp"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		name string
		h    int
		s, l float64
		want string
	}{
		{name: "red", h: 0, s: 70, l: 50, want: "#d92626"},
		{name: "orange", h: 30, s: 70, l: 50, want: "#d98026"},
		{name: "green", h: 120, s: 70, l: 50, want: "#26d926"},
		{name: "blue", h: 240, s: 70, l: 50, want: "#2626d9"},
		{name: "full wrap", h: 360, s: 70, l: 50, want: "#d92626"},
		{name: "negative hue", h: -240, s: 70, l: 50, want: "#26d926"},
		{name: "grey", h: 200, s: 0, l: 50, want: "#808080"},
		{name: "white", h: 10, s: 70, l: 100, want: "#ffffff"},
		{name: "black", h: 10, s: 70, l: 0, want: "#000000"},
		{name: "clamped lightness", h: 10, s: 70, l: 150, want: "#ffffff"},
		{name: "clamped saturation", h: 0, s: -20, l: 50, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToHex(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToHex(%d, %v, %v) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHSLToHexFormat(t *testing.T) {
	for h := -360; h < 720; h++ {
		for _, l := range []float64{0, 25, 50, 75, 100} {
			got := HSLToHex(h, DefaultSaturation, l)
			if !hexPattern.MatchString(got) {
				t.Fatalf("HSLToHex(%d, 70, %v) = %q, not a hex colour", h, l, got)
			}
		}
	}
}

// go-colorful implements the textbook HSL conversion; allow one step of
// rounding difference per channel.
func TestHSLToRGBMatchesColorful(t *testing.T) {
	for h := 0; h < 360; h++ {
		got := HSLToRGB(h, DefaultSaturation, DefaultLightness)
		r, g, b := colorful.Hsl(float64(h), 0.7, 0.5).RGB255()

		if absDiff(got.R, r) > 1 || absDiff(got.G, g) > 1 || absDiff(got.B, b) > 1 {
			t.Errorf("hue %d: got %s, colorful %s", h, got.Hex(), RGB{R: r, G: g, B: b}.Hex())
		}
	}
}

func TestNewHSL(t *testing.T) {
	c := NewHSL(390)
	if c.H != 30 || c.S != DefaultSaturation || c.L != DefaultLightness {
		t.Fatalf("NewHSL(390) = %+v", c)
	}
	if got, want := c.String(), "hsl(30, 70%, 50%)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := c.Hex(), "#d98026"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
