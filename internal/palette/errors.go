package palette

import "errors"

var (
	// ErrInvalidIndex is returned when a swatch index is outside [0, SwatchCount).
	ErrInvalidIndex = errors.New("invalid swatch index")

	// ErrUnsupportedOperation is returned for actions that are not available,
	// either because they are unimplemented or disabled by Features.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
