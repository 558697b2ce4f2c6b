package signal

import (
	"fmt"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

type scaleAmp[S sample.Sample] struct {
	src Signal[S]
	amp float64
}

// ScaleAmp multiplies every frame of src by the constant amplitude amp.
func ScaleAmp[S sample.Sample](src Signal[S], amp float64) Signal[S] {
	return &scaleAmp[S]{src: src, amp: amp}
}

func (s *scaleAmp[S]) Next() frame.Frame[S] {
	f := s.src.Next()
	f.ScaleAmp(s.amp)

	return f
}

func (s *scaleAmp[S]) Exhausted() bool { return s.src.Exhausted() }
func (s *scaleAmp[S]) Channels() int   { return s.src.Channels() }

type offsetAmp[S sample.Sample] struct {
	src    Signal[S]
	offset S
}

// OffsetAmp adds a constant amplitude offset to every channel of src.
func OffsetAmp[S sample.Sample](src Signal[S], offset S) Signal[S] {
	return &offsetAmp[S]{src: src, offset: offset}
}

func (s *offsetAmp[S]) Next() frame.Frame[S] {
	f := s.src.Next()
	f.OffsetAmp(s.offset)

	return f
}

func (s *offsetAmp[S]) Exhausted() bool { return s.src.Exhausted() }
func (s *offsetAmp[S]) Channels() int   { return s.src.Channels() }

type scaleAmpPerChannel[S sample.Sample] struct {
	src  Signal[S]
	amps []float64
}

// ScaleAmpPerChannel multiplies each channel of src by its own amplitude.
func ScaleAmpPerChannel[S sample.Sample](src Signal[S], amps []float64) (Signal[S], error) {
	if len(amps) != src.Channels() {
		return nil, fmt.Errorf("%w: %d multipliers for %d channels", ErrChannelMismatch, len(amps), src.Channels())
	}

	own := make([]float64, len(amps))
	copy(own, amps)

	return &scaleAmpPerChannel[S]{src: src, amps: own}, nil
}

func (s *scaleAmpPerChannel[S]) Next() frame.Frame[S] {
	f := s.src.Next()
	f.MulAmp(s.amps)

	return f
}

func (s *scaleAmpPerChannel[S]) Exhausted() bool { return s.src.Exhausted() }
func (s *scaleAmpPerChannel[S]) Channels() int   { return s.src.Channels() }

type offsetAmpPerChannel[S sample.Sample] struct {
	src     Signal[S]
	offsets frame.Frame[S]
}

// OffsetAmpPerChannel adds each channel's own amplitude offset.
func OffsetAmpPerChannel[S sample.Sample](src Signal[S], offsets []S) (Signal[S], error) {
	if len(offsets) != src.Channels() {
		return nil, fmt.Errorf("%w: %d offsets for %d channels", ErrChannelMismatch, len(offsets), src.Channels())
	}

	own := make(frame.Frame[S], len(offsets))
	copy(own, offsets)

	return &offsetAmpPerChannel[S]{src: src, offsets: own}, nil
}

func (s *offsetAmpPerChannel[S]) Next() frame.Frame[S] {
	f := s.src.Next()
	f.AddAmp(s.offsets)

	return f
}

func (s *offsetAmpPerChannel[S]) Exhausted() bool { return s.src.Exhausted() }
func (s *offsetAmpPerChannel[S]) Channels() int   { return s.src.Channels() }

type addAmp[S sample.Sample] struct {
	a, b Signal[S]
}

// AddAmp sums two signals frame by frame. Both children advance once per
// output frame, a before b, and the sum is exhausted when either child is.
func AddAmp[S sample.Sample](a, b Signal[S]) (Signal[S], error) {
	if a.Channels() != b.Channels() {
		return nil, fmt.Errorf("%w: %d vs %d channels", ErrChannelMismatch, a.Channels(), b.Channels())
	}

	return &addAmp[S]{a: a, b: b}, nil
}

func (s *addAmp[S]) Next() frame.Frame[S] {
	fa := s.a.Next()
	fa.AddAmp(s.b.Next())

	return fa
}

func (s *addAmp[S]) Exhausted() bool { return s.a.Exhausted() || s.b.Exhausted() }
func (s *addAmp[S]) Channels() int   { return s.a.Channels() }

type mulAmp[S sample.Sample] struct {
	src  Signal[S]
	amps Signal[sample.F64]
}

// MulAmp scales src channel by channel with amplitudes pulled from a second
// signal. The product is exhausted when either input is.
func MulAmp[S sample.Sample](src Signal[S], amps Signal[sample.F64]) (Signal[S], error) {
	if src.Channels() != amps.Channels() {
		return nil, fmt.Errorf("%w: %d vs %d channels", ErrChannelMismatch, src.Channels(), amps.Channels())
	}

	return &mulAmp[S]{src: src, amps: amps}, nil
}

func (s *mulAmp[S]) Next() frame.Frame[S] {
	f := s.src.Next()
	f.MulAmp(s.amps.Next())

	return f
}

func (s *mulAmp[S]) Exhausted() bool { return s.src.Exhausted() || s.amps.Exhausted() }
func (s *mulAmp[S]) Channels() int   { return s.src.Channels() }

type clipAmp[S sample.Sample] struct {
	src    Signal[S]
	thresh S
}

// ClipAmp limits every channel's excursion around equilibrium to the
// magnitude of thresh.
func ClipAmp[S sample.Sample](src Signal[S], thresh S) Signal[S] {
	return &clipAmp[S]{src: src, thresh: thresh}
}

func (s *clipAmp[S]) Next() frame.Frame[S] {
	f := s.src.Next()
	f.Clip(s.thresh)

	return f
}

func (s *clipAmp[S]) Exhausted() bool { return s.src.Exhausted() }
func (s *clipAmp[S]) Channels() int   { return s.src.Channels() }

type delay[S sample.Sample] struct {
	src       Signal[S]
	remaining int
	out       frame.Frame[S]
}

// Delay yields n equilibrium frames before passing src through unchanged.
func Delay[S sample.Sample](src Signal[S], n int) Signal[S] {
	return &delay[S]{src: src, remaining: max(n, 0), out: make(frame.Frame[S], src.Channels())}
}

func (s *delay[S]) Next() frame.Frame[S] {
	if s.remaining > 0 {
		s.remaining--
		s.out.SetEquilibrium()

		return s.out
	}

	return s.src.Next()
}

func (s *delay[S]) Exhausted() bool { return s.remaining == 0 && s.src.Exhausted() }
func (s *delay[S]) Channels() int   { return s.src.Channels() }

type take[S sample.Sample] struct {
	src       Signal[S]
	remaining int
	out       frame.Frame[S]
}

// Take passes through the next n frames of src and is exhausted afterwards.
func Take[S sample.Sample](src Signal[S], n int) Signal[S] {
	return &take[S]{src: src, remaining: max(n, 0), out: make(frame.Frame[S], src.Channels())}
}

func (s *take[S]) Next() frame.Frame[S] {
	if s.remaining <= 0 {
		s.out.SetEquilibrium()

		return s.out
	}
	s.remaining--

	return s.src.Next()
}

func (s *take[S]) Exhausted() bool { return s.remaining <= 0 || s.src.Exhausted() }
func (s *take[S]) Channels() int   { return s.src.Channels() }

type mapped[S sample.Sample] struct {
	src Signal[S]
	fn  func(frame.Frame[S])
}

// Map applies fn to every frame of src in place.
func Map[S sample.Sample](src Signal[S], fn func(frame.Frame[S])) Signal[S] {
	return &mapped[S]{src: src, fn: fn}
}

func (s *mapped[S]) Next() frame.Frame[S] {
	f := s.src.Next()
	s.fn(f)

	return f
}

func (s *mapped[S]) Exhausted() bool { return s.src.Exhausted() }
func (s *mapped[S]) Channels() int   { return s.src.Channels() }

type zipMap[S sample.Sample] struct {
	a, b Signal[S]
	fn   func(a, b S) S
}

// ZipMap combines two signals channel by channel with fn. Both children
// advance once per output frame, a before b, and the result is exhausted
// when either child is.
func ZipMap[S sample.Sample](a, b Signal[S], fn func(a, b S) S) (Signal[S], error) {
	if a.Channels() != b.Channels() {
		return nil, fmt.Errorf("%w: %d vs %d channels", ErrChannelMismatch, a.Channels(), b.Channels())
	}

	return &zipMap[S]{a: a, b: b, fn: fn}, nil
}

func (s *zipMap[S]) Next() frame.Frame[S] {
	fa := s.a.Next()
	fa.ZipMap(s.b.Next(), s.fn)

	return fa
}

func (s *zipMap[S]) Exhausted() bool { return s.a.Exhausted() || s.b.Exhausted() }
func (s *zipMap[S]) Channels() int   { return s.a.Channels() }

type inspect[S sample.Sample] struct {
	src Signal[S]
	fn  func(frame.Frame[S])
}

// Inspect calls fn with every frame of src as it passes through. fn must
// treat the frame as read-only.
func Inspect[S sample.Sample](src Signal[S], fn func(frame.Frame[S])) Signal[S] {
	return &inspect[S]{src: src, fn: fn}
}

func (s *inspect[S]) Next() frame.Frame[S] {
	f := s.src.Next()
	s.fn(f)

	return f
}

func (s *inspect[S]) Exhausted() bool { return s.src.Exhausted() }
func (s *inspect[S]) Channels() int   { return s.src.Channels() }

type converted[T, S sample.Sample] struct {
	src Signal[S]
	out frame.Frame[T]
}

// Convert yields src with every sample converted to format T.
func Convert[T, S sample.Sample](src Signal[S]) Signal[T] {
	return &converted[T, S]{src: src, out: make(frame.Frame[T], src.Channels())}
}

func (s *converted[T, S]) Next() frame.Frame[T] {
	f := s.src.Next()
	for i := range f {
		s.out[i] = sample.To[T](f[i])
	}

	return s.out
}

func (s *converted[T, S]) Exhausted() bool { return s.src.Exhausted() }
func (s *converted[T, S]) Channels() int   { return s.src.Channels() }
