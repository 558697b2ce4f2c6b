package frame

import "errors"

var (
	// ErrChannelCount is returned when a channel count is outside
	// [1, MaxChannels].
	ErrChannelCount = errors.New("frame: invalid channel count")

	// ErrShapeMismatch is returned when two operands disagree on their
	// channel count.
	ErrShapeMismatch = errors.New("frame: shape mismatch")
)
