package colour

import (
	"fmt"
	"math"
)

// Contrast thresholds for WCAG 2.0 normal text.
const (
	MinContrastAA  = 4.5
	MinContrastAAA = 7.0
	MaxContrast    = 21.0
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// RoundRatio rounds a ratio to two decimal places, half away from zero.
func RoundRatio(r float64) float64 {
	return math.Round(r*100) / 100
}

// Contrast parses two hex colours and returns their contrast ratio rounded
// to two decimal places.
func Contrast(hexA, hexB string) (float64, error) {
	a, err := ParseHex(hexA)
	if err != nil {
		return 0, err
	}
	b, err := ParseHex(hexB)
	if err != nil {
		return 0, err
	}
	return RoundRatio(ContrastRatio(a, b)), nil
}

// Rating is the accessibility level a contrast ratio reaches.
type Rating int

const (
	// RatingFail is below the AA threshold.
	RatingFail Rating = iota
	// RatingAA meets 4.5:1 but not 7:1.
	RatingAA
	// RatingAAA meets 7:1.
	RatingAAA
)

// Classify returns the rating for ratio. Both thresholds are inclusive.
func Classify(ratio float64) Rating {
	switch {
	case ratio >= MinContrastAAA:
		return RatingAAA
	case ratio >= MinContrastAA:
		return RatingAA
	default:
		return RatingFail
	}
}

// String returns the display label of a Rating.
func (r Rating) String() string {
	switch r {
	case RatingAAA:
		return "pass AAA"
	case RatingAA:
		return "pass AA"
	case RatingFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// BarColour returns the meter colour used to display a Rating.
func (r Rating) BarColour() string {
	switch r {
	case RatingAAA:
		return "#4caf50"
	case RatingAA:
		return "#ffc107"
	default:
		return "#f44336"
	}
}

// BarWidth normalises a ratio to a 0-100 meter width.
func BarWidth(ratio float64) int {
	return int(math.Min(100, math.Round(ratio/MaxContrast*100)))
}

// Score is the displayed contrast between two colours.
// Rating and BarWidth derive from the rounded Ratio.
type Score struct {
	Ratio    float64 `json:"ratio"`
	Rating   Rating  `json:"rating"`
	BarWidth int     `json:"bar_width"`
}

// NewScore scores the contrast between a and b.
func NewScore(a, b RGB) Score {
	ratio := RoundRatio(ContrastRatio(a, b))
	return Score{
		Ratio:    ratio,
		Rating:   Classify(ratio),
		BarWidth: BarWidth(ratio),
	}
}

// String returns the ratio formatted with two decimals, e.g. "4.52".
func (s Score) String() string {
	return fmt.Sprintf("%.2f", s.Ratio)
}
