package interpolate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
	"github.com/cwbudde/algo-pcm/pcm/signal"
)

// Converter resamples a signal through an interpolator. It accumulates a
// fractional read position by the source-to-target ratio and pulls one
// source frame each time the position crosses a frame boundary, so both
// upsampling and downsampling advance the source exactly as fast as needed.
type Converter[S sample.Sample] struct {
	src    signal.Signal[S]
	interp Interpolator[S]
	pos    float64 // fractional position into the interpolator's history
	ratio  float64 // source frames consumed per target frame
}

func validRatio(ratio float64) error {
	if !(ratio > 0) || math.IsInf(ratio, 1) {
		return fmt.Errorf("%w: %v source frames per target frame", ErrInvalidRatio, ratio)
	}

	return nil
}

func newConverter[S sample.Sample](src signal.Signal[S], interp Interpolator[S], ratio float64) (*Converter[S], error) {
	if err := validRatio(ratio); err != nil {
		return nil, err
	}
	if src.Channels() != interp.Channels() {
		return nil, fmt.Errorf("%w: source has %d channels, interpolator %d",
			signal.ErrChannelMismatch, src.Channels(), interp.Channels())
	}

	return &Converter[S]{src: src, interp: interp, ratio: ratio}, nil
}

// NewFromRates resamples src from sourceHz to targetHz.
func NewFromRates[S sample.Sample](src signal.Signal[S], interp Interpolator[S], sourceHz, targetHz float64) (*Converter[S], error) {
	if !(sourceHz > 0) || !(targetHz > 0) {
		return nil, fmt.Errorf("%w: %v hz to %v hz", ErrInvalidRatio, sourceHz, targetHz)
	}

	return newConverter(src, interp, sourceHz/targetHz)
}

// NewPlaybackScale multiplies the playback rate of src by scale: 2 plays
// twice as fast and yields half as many frames.
func NewPlaybackScale[S sample.Sample](src signal.Signal[S], interp Interpolator[S], scale float64) (*Converter[S], error) {
	return newConverter(src, interp, scale)
}

// SetRates retargets the conversion ratio mid-stream.
func (c *Converter[S]) SetRates(sourceHz, targetHz float64) error {
	if !(sourceHz > 0) || !(targetHz > 0) {
		return fmt.Errorf("%w: %v hz to %v hz", ErrInvalidRatio, sourceHz, targetHz)
	}

	return c.SetPlaybackScale(sourceHz / targetHz)
}

// SetPlaybackScale changes the playback-rate multiplier mid-stream.
func (c *Converter[S]) SetPlaybackScale(scale float64) error {
	if err := validRatio(scale); err != nil {
		return err
	}
	c.ratio = scale

	return nil
}

// PlaybackScale returns the current playback-rate multiplier.
func (c *Converter[S]) PlaybackScale() float64 { return c.ratio }

func (c *Converter[S]) Next() frame.Frame[S] {
	for c.pos >= 1.0 {
		c.interp.NextSourceFrame(c.src.Next())
		c.pos--
	}

	out := c.interp.Interpolate(c.pos)
	c.pos += c.ratio

	return out
}

// Exhausted reports true once the source is exhausted and the read position
// has moved past the interpolator's supplied history.
func (c *Converter[S]) Exhausted() bool {
	return c.src.Exhausted() && c.pos >= 1.0
}

func (c *Converter[S]) Channels() int { return c.src.Channels() }

// MulHz resamples a signal with a playback-rate multiplier read from a
// control signal, one value per output frame.
type MulHz[S sample.Sample] struct {
	conv *Converter[S]
	mul  signal.Signal[sample.F64]
}

// NewMulHz modulates the playback rate of src by the first channel of mul.
func NewMulHz[S sample.Sample](src signal.Signal[S], interp Interpolator[S], mul signal.Signal[sample.F64]) (*MulHz[S], error) {
	conv, err := newConverter(src, interp, 1.0)
	if err != nil {
		return nil, err
	}

	return &MulHz[S]{conv: conv, mul: mul}, nil
}

func (m *MulHz[S]) Next() frame.Frame[S] {
	// The multiplier is applied unchecked so the control signal may sweep
	// freely; a non-positive value simply stalls the source.
	m.conv.ratio = m.mul.Next()[0]

	return m.conv.Next()
}

func (m *MulHz[S]) Exhausted() bool { return m.conv.Exhausted() || m.mul.Exhausted() }
func (m *MulHz[S]) Channels() int   { return m.conv.Channels() }
