package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// RequireFramesNearlyEqual fails t if the two frame sequences differ in
// shape or if any sample pair exceeds eps (absolute tolerance).
func RequireFramesNearlyEqual(t *testing.T, got, want []frame.Frame[sample.F64], eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("frame count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("frame %d: channel count mismatch: got %d, want %d", i, len(got[i]), len(want[i]))
		}
		for c := range got[i] {
			diff := math.Abs(got[i][c] - want[i][c])
			if diff > eps {
				t.Fatalf("frame %d channel %d: got %v, want %v (diff %v > eps %v)", i, c, got[i][c], want[i][c], diff, eps)
			}
		}
	}
}

// MonoFrames wraps a flat sequence of values as single-channel frames.
func MonoFrames(values ...float64) []frame.Frame[sample.F64] {
	out := make([]frame.Frame[sample.F64], len(values))
	for i, v := range values {
		out[i] = frame.Frame[sample.F64]{v}
	}

	return out
}
