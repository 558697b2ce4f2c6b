package buf

import "errors"

var (
	// ErrNilBuffer is returned when a go-audio buffer or its format is nil.
	ErrNilBuffer = errors.New("buf: nil buffer")

	// ErrPartialFrame is returned when a buffer's data does not divide into
	// whole frames for its channel count.
	ErrPartialFrame = errors.New("buf: sample count not a multiple of channel count")

	// ErrBitDepth is returned for integer buffers whose source bit depth is
	// not supported.
	ErrBitDepth = errors.New("buf: unsupported bit depth")
)
