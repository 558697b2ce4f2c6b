package interpolate

import (
	"fmt"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// Interpolator reconstructs frames at fractional positions between buffered
// source frames.
type Interpolator[S sample.Sample] interface {
	// Interpolate returns the frame at relative position x between the
	// buffered source frames, where 0 is the newest fully buffered
	// position and 1 the next source frame. The returned frame is scratch
	// storage valid until the next call.
	Interpolate(x float64) frame.Frame[S]

	// NextSourceFrame feeds one source frame into the history. The frame
	// is copied.
	NextSourceFrame(f frame.Frame[S])

	// Reset clears the buffered history to equilibrium.
	Reset()

	// Channels returns the channel count of buffered and yielded frames.
	Channels() int
}

// Floor yields the most recent source frame, discarding the fractional
// position. It is the cheapest interpolator and the roughest.
type Floor[S sample.Sample] struct {
	left frame.Frame[S]
	out  frame.Frame[S]
}

// NewFloor returns a Floor interpolator primed with the given frame.
func NewFloor[S sample.Sample](first frame.Frame[S]) (*Floor[S], error) {
	if len(first) < 1 || len(first) > frame.MaxChannels {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", frame.ErrChannelCount, len(first), frame.MaxChannels)
	}

	return &Floor[S]{left: first.Clone(), out: make(frame.Frame[S], len(first))}, nil
}

func (p *Floor[S]) Interpolate(_ float64) frame.Frame[S] {
	p.out.CopyFrom(p.left)

	return p.out
}

func (p *Floor[S]) NextSourceFrame(f frame.Frame[S]) {
	p.left.CopyFrom(f)
}

func (p *Floor[S]) Reset() {
	p.left.SetEquilibrium()
}

func (p *Floor[S]) Channels() int { return len(p.left) }

// Linear blends linearly between the two most recent source frames.
type Linear[S sample.Sample] struct {
	left  frame.Frame[S]
	right frame.Frame[S]
	out   frame.Frame[S]
}

// NewLinear returns a Linear interpolator primed with the first two frames
// to blend between.
func NewLinear[S sample.Sample](left, right frame.Frame[S]) (*Linear[S], error) {
	if len(left) < 1 || len(left) > frame.MaxChannels {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", frame.ErrChannelCount, len(left), frame.MaxChannels)
	}
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: %d vs %d channels", frame.ErrShapeMismatch, len(left), len(right))
	}

	return &Linear[S]{
		left:  left.Clone(),
		right: right.Clone(),
		out:   make(frame.Frame[S], len(left)),
	}, nil
}

// Interpolate blends at position x. Values outside [0, 1] simply continue
// the ramp in either direction.
func (p *Linear[S]) Interpolate(x float64) frame.Frame[S] {
	for i := range p.out {
		l := sample.ToFloat64(p.left[i])
		r := sample.ToFloat64(p.right[i])
		p.out[i] = sample.FromFloat64[S]((r-l)*x + l)
	}

	return p.out
}

func (p *Linear[S]) NextSourceFrame(f frame.Frame[S]) {
	p.left.CopyFrom(p.right)
	p.right.CopyFrom(f)
}

func (p *Linear[S]) Reset() {
	p.left.SetEquilibrium()
	p.right.SetEquilibrium()
}

func (p *Linear[S]) Channels() int { return len(p.left) }
