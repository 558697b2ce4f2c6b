package window

import (
	"fmt"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
	"github.com/cwbudde/algo-pcm/pcm/signal"
)

type frames struct {
	t     Type
	phase *signal.Phase
	out   frame.Frame[sample.F64]
}

// Frames yields the amplitudes of a window of the given length as an
// endless mono signal; the phase wraps after length frames.
func Frames(t Type, length int) (signal.Signal[sample.F64], error) {
	if length < 2 {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, length)
	}

	rate, err := signal.NewRate(float64(length - 1))
	if err != nil {
		return nil, err
	}

	return &frames{
		t:     t,
		phase: rate.ConstHz(1.0).Phase(),
		out:   make(frame.Frame[sample.F64], 1),
	}, nil
}

func (f *frames) Next() frame.Frame[sample.F64] {
	f.out[0] = At(f.t, f.phase.NextPhase())

	return f.out
}

func (f *frames) Exhausted() bool { return false }
func (f *frames) Channels() int   { return 1 }

type windowed[S sample.Sample] struct {
	src    signal.Signal[S]
	t      Type
	length int
	pos    int
	out    frame.Frame[S]
}

// Windowed multiplies src by a window spanning length frames and is
// exhausted afterwards.
func Windowed[S sample.Sample](src signal.Signal[S], t Type, length int) (signal.Signal[S], error) {
	if length < 2 {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, length)
	}

	return &windowed[S]{
		src:    src,
		t:      t,
		length: length,
		out:    make(frame.Frame[S], src.Channels()),
	}, nil
}

func (w *windowed[S]) Next() frame.Frame[S] {
	if w.pos >= w.length {
		w.out.SetEquilibrium()

		return w.out
	}

	amp := At(w.t, float64(w.pos)/float64(w.length-1))
	w.pos++

	f := w.src.Next()
	f.ScaleAmp(amp)

	return f
}

func (w *windowed[S]) Exhausted() bool { return w.pos >= w.length || w.src.Exhausted() }
func (w *windowed[S]) Channels() int   { return w.src.Channels() }
