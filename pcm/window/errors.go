package window

import "errors"

var (
	// ErrWindowSize is returned for window lengths that cannot produce a
	// taper.
	ErrWindowSize = errors.New("window: invalid window size")

	// ErrLengthMismatch is returned when samples and coefficients differ in
	// length.
	ErrLengthMismatch = errors.New("window: samples and coefficients must have same length")
)
