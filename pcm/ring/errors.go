package ring

import "errors"

var (
	// ErrZeroCapacity is returned when the supplied backing slice is empty.
	ErrZeroCapacity = errors.New("ring: zero capacity")

	// ErrOutOfRange is returned by At for indices outside the buffer.
	ErrOutOfRange = errors.New("ring: index out of range")
)
