package signal

import "errors"

var (
	// ErrChannelMismatch is returned when two signals or a signal and a
	// per-channel argument disagree on the channel count.
	ErrChannelMismatch = errors.New("signal: channel count mismatch")

	// ErrPartialFrame is returned when an interleaved sample slice does not
	// divide evenly into whole frames.
	ErrPartialFrame = errors.New("signal: partial trailing frame")

	// ErrInvalidRate is returned for sample rates that are not positive and
	// finite.
	ErrInvalidRate = errors.New("signal: invalid sample rate")
)
