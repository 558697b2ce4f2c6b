package interpolate

import "errors"

var (
	// ErrInvalidRatio is returned when a rate, scale or ratio is not
	// positive and finite.
	ErrInvalidRatio = errors.New("interpolate: invalid rate ratio")

	// ErrWindowLength is returned when a sinc history ring does not have a
	// positive even length.
	ErrWindowLength = errors.New("interpolate: history length must be positive and even")

	// ErrInvalidCutoff is returned when a sinc cutoff is outside (0, 1].
	ErrInvalidCutoff = errors.New("interpolate: cutoff must be in (0, 1]")
)
