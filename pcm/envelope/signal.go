package envelope

import (
	"fmt"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
	"github.com/cwbudde/algo-pcm/pcm/signal"
)

type follower[S sample.Sample] struct {
	src signal.Signal[S]
	det *Detector[S]
}

// Follow adapts a detector into a signal yielding the envelope of src, one
// envelope frame per input frame.
func Follow[S sample.Sample](src signal.Signal[S], det *Detector[S]) (signal.Signal[sample.F64], error) {
	if src.Channels() != det.Channels() {
		return nil, fmt.Errorf("%w: source has %d channels, detector %d",
			signal.ErrChannelMismatch, src.Channels(), det.Channels())
	}

	return &follower[S]{src: src, det: det}, nil
}

func (f *follower[S]) Next() frame.Frame[sample.F64] {
	return f.det.Next(f.src.Next())
}

func (f *follower[S]) Exhausted() bool { return f.src.Exhausted() }
func (f *follower[S]) Channels() int   { return f.src.Channels() }
