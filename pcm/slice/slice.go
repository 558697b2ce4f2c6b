package slice

import (
	"fmt"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// ToFrames carves a channel-interleaved buffer into frame views. The frames
// alias the buffer, so mutating a frame mutates the buffer and vice versa.
func ToFrames[S sample.Sample](samples []S, channels int) ([]frame.Frame[S], error) {
	if channels < 1 || channels > frame.MaxChannels {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", frame.ErrChannelCount, channels, frame.MaxChannels)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples across %d channels", ErrPartialFrame, len(samples), channels)
	}

	out := make([]frame.Frame[S], len(samples)/channels)
	for i := range out {
		out[i] = frame.Frame[S](samples[i*channels : (i+1)*channels : (i+1)*channels])
	}

	return out, nil
}

// Interleave flattens frames back into a channel-interleaved buffer. All
// frames must share one channel count.
func Interleave[S sample.Sample](frames []frame.Frame[S]) ([]S, error) {
	if len(frames) == 0 {
		return nil, nil
	}

	channels := len(frames[0])
	out := make([]S, 0, len(frames)*channels)
	for i, f := range frames {
		if len(f) != channels {
			return nil, fmt.Errorf("%w: frame %d has %d channels, want %d", frame.ErrShapeMismatch, i, len(f), channels)
		}
		out = append(out, f...)
	}

	return out, nil
}

// Equilibrium writes silence over the whole buffer.
func Equilibrium[S sample.Sample](samples []S) {
	eq := sample.Equilibrium[S]()
	for i := range samples {
		samples[i] = eq
	}
}

// Convert writes src into dst sample by sample in dst's format. The buffers
// must have equal length.
func Convert[T, S sample.Sample](dst []T, src []S) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d into %d", ErrLengthMismatch, len(src), len(dst))
	}
	for i := range src {
		dst[i] = sample.To[T](src[i])
	}

	return nil
}

// ToFloat64 writes the full-scale float amplitude of every sample in src
// into dst. The buffers must have equal length.
func ToFloat64[S sample.Sample](dst []float64, src []S) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d into %d", ErrLengthMismatch, len(src), len(dst))
	}
	for i := range src {
		dst[i] = sample.ToFloat64(src[i])
	}

	return nil
}

// FromFloat64 writes full-scale float amplitudes into dst's sample format.
// The buffers must have equal length.
func FromFloat64[S sample.Sample](dst []S, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d into %d", ErrLengthMismatch, len(src), len(dst))
	}
	for i := range src {
		dst[i] = sample.FromFloat64[S](src[i])
	}

	return nil
}
