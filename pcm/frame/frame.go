package frame

import (
	"fmt"

	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// MaxChannels bounds the supported channel count per frame.
const MaxChannels = 32

// Frame holds one sample per channel. Its length is the channel count and
// must never change after construction.
type Frame[S sample.Sample] []S

// New allocates an equilibrium frame with the given channel count.
func New[S sample.Sample](channels int) (Frame[S], error) {
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrChannelCount, channels, MaxChannels)
	}

	f := make(Frame[S], channels)
	f.SetEquilibrium()

	return f, nil
}

// Channels returns the channel count.
func (f Frame[S]) Channels() int { return len(f) }

// SetEquilibrium writes silence to every channel.
func (f Frame[S]) SetEquilibrium() {
	eq := sample.Equilibrium[S]()
	for i := range f {
		f[i] = eq
	}
}

// Fill writes v to every channel.
func (f Frame[S]) Fill(v S) {
	for i := range f {
		f[i] = v
	}
}

// Clone returns a newly allocated copy of f.
func (f Frame[S]) Clone() Frame[S] {
	out := make(Frame[S], len(f))
	copy(out, f)

	return out
}

// CopyFrom copies src into f. Both frames must have the same channel count.
func (f Frame[S]) CopyFrom(src Frame[S]) {
	copy(f, src)
}

// Equal reports whether f and other hold identical samples.
func (f Frame[S]) Equal(other Frame[S]) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}

	return true
}

// Map applies fn to every channel in place.
func (f Frame[S]) Map(fn func(S) S) {
	for i := range f {
		f[i] = fn(f[i])
	}
}

// ZipMap combines f with other channel by channel, storing the result in f.
func (f Frame[S]) ZipMap(other Frame[S], fn func(a, b S) S) {
	for i := range f {
		f[i] = fn(f[i], other[i])
	}
}

// ScaleAmp multiplies every channel's amplitude by amp.
func (f Frame[S]) ScaleAmp(amp float64) {
	for i := range f {
		f[i] = sample.MulAmp(f[i], amp)
	}
}

// OffsetAmp adds the amplitude of offset to every channel.
func (f Frame[S]) OffsetAmp(offset S) {
	for i := range f {
		f[i] = sample.AddAmp(f[i], offset)
	}
}

// AddAmp sums other into f channel by channel.
func (f Frame[S]) AddAmp(other Frame[S]) {
	for i := range f {
		f[i] = sample.AddAmp(f[i], other[i])
	}
}

// MulAmp scales each channel of f by the matching multiplier.
func (f Frame[S]) MulAmp(amps []float64) {
	for i := range f {
		f[i] = sample.MulAmp(f[i], amps[i])
	}
}

// Clip limits every channel's excursion around equilibrium to the magnitude
// of thresh.
func (f Frame[S]) Clip(thresh S) {
	for i := range f {
		f[i] = sample.Clip(f[i], thresh)
	}
}

// ScaleAmpPerChannel multiplies each channel by its own amplitude. It returns
// ErrShapeMismatch when amps does not match the channel count.
func (f Frame[S]) ScaleAmpPerChannel(amps []float64) error {
	if len(amps) != len(f) {
		return fmt.Errorf("%w: %d multipliers for %d channels", ErrShapeMismatch, len(amps), len(f))
	}

	f.MulAmp(amps)

	return nil
}

// OffsetAmpPerChannel adds each channel's own offset. It returns
// ErrShapeMismatch when offsets does not match the channel count.
func (f Frame[S]) OffsetAmpPerChannel(offsets []S) error {
	if len(offsets) != len(f) {
		return fmt.Errorf("%w: %d offsets for %d channels", ErrShapeMismatch, len(offsets), len(f))
	}
	for i := range f {
		f[i] = sample.AddAmp(f[i], offsets[i])
	}

	return nil
}

// Convert writes src converted to dst's sample format. It returns
// ErrShapeMismatch when the channel counts differ.
func Convert[T, S sample.Sample](dst Frame[T], src Frame[S]) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d channels into %d", ErrShapeMismatch, len(src), len(dst))
	}
	for i := range src {
		dst[i] = sample.To[T](src[i])
	}

	return nil
}

// ToFloat64 writes the full-scale float amplitude of src into dst. It
// returns ErrShapeMismatch when the channel counts differ.
func ToFloat64[S sample.Sample](dst []float64, src Frame[S]) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d channels into %d", ErrShapeMismatch, len(src), len(dst))
	}
	for i := range src {
		dst[i] = sample.ToFloat64(src[i])
	}

	return nil
}
