package slice

import "errors"

var (
	// ErrPartialFrame is returned when an interleaved buffer does not divide
	// into whole frames.
	ErrPartialFrame = errors.New("slice: sample count not a multiple of channel count")

	// ErrLengthMismatch is returned when two buffers that must pair up
	// element-wise differ in length.
	ErrLengthMismatch = errors.New("slice: buffer lengths differ")
)
