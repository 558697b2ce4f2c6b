package signal

import (
	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// Signal yields a stream of PCM frames.
type Signal[S sample.Sample] interface {
	// Next returns the next frame. The returned slice is scratch storage
	// owned by the signal: it is valid until the following call to Next and
	// the caller may mutate it freely.
	Next() frame.Frame[S]

	// Exhausted reports whether the underlying source has run out. An
	// exhausted signal keeps yielding equilibrium frames.
	Exhausted() bool

	// Channels returns the channel count of every yielded frame.
	Channels() int
}

// Frames collects the next n frames from s, cloning each.
func Frames[S sample.Sample](s Signal[S], n int) []frame.Frame[S] {
	out := make([]frame.Frame[S], 0, n)
	for range n {
		out = append(out, s.Next().Clone())
	}

	return out
}

// Drain collects frames until s reports exhaustion, cloning each. Signals
// that never exhaust make Drain loop forever.
func Drain[S sample.Sample](s Signal[S]) []frame.Frame[S] {
	var out []frame.Frame[S]
	for !s.Exhausted() {
		out = append(out, s.Next().Clone())
	}

	return out
}
