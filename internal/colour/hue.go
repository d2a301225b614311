package colour

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

const (
	// SwatchCount is the number of colours in a generated palette.
	SwatchCount = 6
	// HueStep is the angular distance between adjacent swatches, in degrees.
	HueStep = 30
)

// HueSource supplies the random start hue for a palette.
// *math/rand/v2.Rand satisfies it.
type HueSource interface {
	IntN(n int) int
}

// NewSource returns a ChaCha8-backed random source.
// A nil seed draws one from crypto/rand, so each run differs.
func NewSource(seed *uint64) *mathrand.Rand {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		var randomBytes [8]byte
		if _, err := rand.Read(randomBytes[:]); err == nil {
			s = binary.LittleEndian.Uint64(randomBytes[:])
		}
	}

	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], s)
	// #nosec G404 -- hue selection is cosmetic, not cryptographic
	return mathrand.New(mathrand.NewChaCha8(seedArray))
}

// NormaliseHue wraps any integer degree into [0, 360).
func NormaliseHue(h int) int {
	return ((h % 360) + 360) % 360
}

// Sequence returns SwatchCount hues spaced HueStep degrees apart, starting at start.
func Sequence(start int) []int {
	start = NormaliseHue(start)
	hues := make([]int, SwatchCount)
	for i := range hues {
		hues[i] = (start + i*HueStep) % 360
	}
	return hues
}

// RandomSequence draws a start hue from src and returns it with its sequence.
func RandomSequence(src HueSource) (int, []int) {
	start := src.IntN(360)
	return start, Sequence(start)
}
