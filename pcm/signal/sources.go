package signal

import (
	"fmt"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

type equilibrium[S sample.Sample] struct {
	out frame.Frame[S]
}

// Equilibrium returns an endless signal of silence.
func Equilibrium[S sample.Sample](channels int) (Signal[S], error) {
	out, err := frame.New[S](channels)
	if err != nil {
		return nil, err
	}

	return &equilibrium[S]{out: out}, nil
}

func (s *equilibrium[S]) Next() frame.Frame[S] {
	// The caller may have mutated the scratch frame.
	s.out.SetEquilibrium()

	return s.out
}

func (s *equilibrium[S]) Exhausted() bool { return false }
func (s *equilibrium[S]) Channels() int  { return len(s.out) }

type gen[S sample.Sample] struct {
	fn       func() frame.Frame[S]
	channels int
}

// Gen returns an endless signal whose frames are produced by fn. Every frame
// fn returns must have the given channel count.
func Gen[S sample.Sample](channels int, fn func() frame.Frame[S]) (Signal[S], error) {
	if channels < 1 || channels > frame.MaxChannels {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", frame.ErrChannelCount, channels, frame.MaxChannels)
	}

	return &gen[S]{fn: fn, channels: channels}, nil
}

func (s *gen[S]) Next() frame.Frame[S] { return s.fn() }
func (s *gen[S]) Exhausted() bool      { return false }
func (s *gen[S]) Channels() int        { return s.channels }

type genMut[S sample.Sample] struct {
	fn  func(dst frame.Frame[S])
	out frame.Frame[S]
}

// GenMut returns an endless signal that has fn fill the yielded frame in
// place. The destination frame retains whatever fn left in it on the
// previous call.
func GenMut[S sample.Sample](channels int, fn func(dst frame.Frame[S])) (Signal[S], error) {
	out, err := frame.New[S](channels)
	if err != nil {
		return nil, err
	}

	return &genMut[S]{fn: fn, out: out}, nil
}

func (s *genMut[S]) Next() frame.Frame[S] {
	s.fn(s.out)

	return s.out
}

func (s *genMut[S]) Exhausted() bool { return false }
func (s *genMut[S]) Channels() int   { return len(s.out) }

type fromFrames[S sample.Sample] struct {
	frames []frame.Frame[S]
	pos    int
	out    frame.Frame[S]
}

// FromFrames returns a signal that yields the given frames in order and is
// exhausted once they are consumed. The frames are copied into scratch on
// the way out, so the caller's data is never mutated.
func FromFrames[S sample.Sample](channels int, frames []frame.Frame[S]) (Signal[S], error) {
	out, err := frame.New[S](channels)
	if err != nil {
		return nil, err
	}
	for i, f := range frames {
		if len(f) != channels {
			return nil, fmt.Errorf("%w: frame %d has %d channels, want %d", ErrChannelMismatch, i, len(f), channels)
		}
	}

	return &fromFrames[S]{frames: frames, out: out}, nil
}

func (s *fromFrames[S]) Next() frame.Frame[S] {
	if s.pos < len(s.frames) {
		s.out.CopyFrom(s.frames[s.pos])
		s.pos++
	} else {
		s.out.SetEquilibrium()
	}

	return s.out
}

func (s *fromFrames[S]) Exhausted() bool { return s.pos >= len(s.frames) }
func (s *fromFrames[S]) Channels() int   { return len(s.out) }

type fromInterleaved[S sample.Sample] struct {
	samples []S
	pos     int
	out     frame.Frame[S]
}

// FromInterleaved returns a signal over channel-interleaved samples. It
// fails when the slice does not divide into whole frames.
func FromInterleaved[S sample.Sample](samples []S, channels int) (Signal[S], error) {
	out, err := frame.New[S](channels)
	if err != nil {
		return nil, err
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples across %d channels", ErrPartialFrame, len(samples), channels)
	}

	return &fromInterleaved[S]{samples: samples, out: out}, nil
}

func (s *fromInterleaved[S]) Next() frame.Frame[S] {
	if s.pos < len(s.samples) {
		copy(s.out, s.samples[s.pos:s.pos+len(s.out)])
		s.pos += len(s.out)
	} else {
		s.out.SetEquilibrium()
	}

	return s.out
}

func (s *fromInterleaved[S]) Exhausted() bool { return s.pos >= len(s.samples) }
func (s *fromInterleaved[S]) Channels() int   { return len(s.out) }
