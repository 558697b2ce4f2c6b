package rms

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/ring"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// RMS is a sliding-window root-mean-square meter over frames of format S.
// The window ring holds the squares of the most recent frames; pushing a new
// frame evicts the oldest square and updates the running sum in place.
type RMS[S sample.Sample] struct {
	window  *ring.Fixed[frame.Frame[sample.F64]]
	sum     frame.Frame[sample.F64]
	scratch frame.Frame[sample.F64] // next square frame, recycled on eviction
	out     frame.Frame[sample.F64]
}

// New returns a meter over the given channel count and window size in
// frames. The window starts out silent.
func New[S sample.Sample](channels, windowFrames int) (*RMS[S], error) {
	if channels < 1 || channels > frame.MaxChannels {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", frame.ErrChannelCount, channels, frame.MaxChannels)
	}

	storage := make([]frame.Frame[sample.F64], max(windowFrames, 0))
	for i := range storage {
		storage[i] = make(frame.Frame[sample.F64], channels)
	}
	window, err := ring.NewFixed(storage)
	if err != nil {
		return nil, err
	}

	return &RMS[S]{
		window:  window,
		sum:     make(frame.Frame[sample.F64], channels),
		scratch: make(frame.Frame[sample.F64], channels),
		out:     make(frame.Frame[sample.F64], channels),
	}, nil
}

// WindowFrames returns the window size in frames.
func (r *RMS[S]) WindowFrames() int { return r.window.Len() }

// Channels returns the channel count.
func (r *RMS[S]) Channels() int { return len(r.sum) }

// Next pushes a frame into the window and returns the RMS per channel over
// the updated window. The returned frame is scratch storage valid until the
// next call.
func (r *RMS[S]) Next(f frame.Frame[S]) frame.Frame[sample.F64] {
	out := r.NextSquared(f)
	for i := range out {
		out[i] = math.Sqrt(out[i])
	}

	return out
}

// NextSquared is Next without the final square root.
func (r *RMS[S]) NextSquared(f frame.Frame[S]) frame.Frame[sample.F64] {
	for i := range r.scratch {
		v := sample.ToFloat64(f[i])
		r.scratch[i] = v * v
	}

	evicted := r.window.Push(r.scratch)
	for i := range r.sum {
		d := r.sum[i] + r.scratch[i] - evicted[i]
		// Keep rounding drift from pushing the sum below silence.
		if d < 0 {
			d = 0
		}
		r.sum[i] = d
	}
	r.scratch = evicted

	n := float64(r.window.Len())
	for i := range r.out {
		r.out[i] = r.sum[i] / n
	}

	return r.out
}

// Current returns the RMS over the frames currently in the window without
// advancing it.
func (r *RMS[S]) Current() frame.Frame[sample.F64] {
	n := float64(r.window.Len())
	for i := range r.out {
		r.out[i] = math.Sqrt(r.sum[i] / n)
	}

	return r.out
}

// Reset silences the window and the running sum.
func (r *RMS[S]) Reset() {
	r.window.Do(func(f frame.Frame[sample.F64]) { f.SetEquilibrium() })
	r.sum.SetEquilibrium()
}
