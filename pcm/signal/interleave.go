package signal

import (
	"fmt"

	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// ReadInterleaved fills dst with channel-interleaved samples pulled from s,
// stopping early when s is exhausted. It returns the number of samples
// written, always a multiple of the channel count. The destination length
// must divide into whole frames.
func ReadInterleaved[S sample.Sample](s Signal[S], dst []S) (int, error) {
	channels := s.Channels()
	if len(dst)%channels != 0 {
		return 0, fmt.Errorf("%w: %d samples across %d channels", ErrPartialFrame, len(dst), channels)
	}

	pos := 0
	for pos < len(dst) && !s.Exhausted() {
		copy(dst[pos:pos+channels], s.Next())
		pos += channels
	}

	return pos, nil
}

// IntoInterleaved collects the next n frames of s into a freshly allocated
// channel-interleaved slice. Exhausted signals pad with equilibrium.
func IntoInterleaved[S sample.Sample](s Signal[S], n int) []S {
	channels := s.Channels()
	out := make([]S, n*channels)
	for i := 0; i < n; i++ {
		copy(out[i*channels:], s.Next())
	}

	return out
}
