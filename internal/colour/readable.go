package colour

var (
	// Black is pure black.
	Black = RGB{R: 0, G: 0, B: 0}
	// White is pure white.
	White = RGB{R: 255, G: 255, B: 255}
)

// ReadableText returns black or white, whichever contrasts more with bg.
// Ties go to white.
func ReadableText(bg RGB) RGB {
	if ContrastRatio(Black, bg) > ContrastRatio(White, bg) {
		return Black
	}
	return White
}
