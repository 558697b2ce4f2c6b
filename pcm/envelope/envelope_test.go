package envelope_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pcm/internal/testutil"
	"github.com/cwbudde/algo-pcm/pcm/envelope"
	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
	"github.com/cwbudde/algo-pcm/pcm/signal"
)

func TestInstantPeakFollower(t *testing.T) {
	// Zero attack and release track the rectified input exactly.
	det, err := envelope.NewFullWavePeak[sample.F64](1, 0, 0)
	if err != nil {
		t.Fatalf("NewFullWavePeak: %v", err)
	}

	inputs := []float64{0.5, -0.8, 0.2, 0.0}
	want := []float64{0.5, 0.8, 0.2, 0.0}
	for i, in := range inputs {
		got := det.Next(frame.Frame[sample.F64]{in})
		if math.Abs(got[0]-want[i]) > 1e-12 {
			t.Errorf("frame %d: envelope = %v, want %v", i, got[0], want[i])
		}
	}
}

func TestAttackReleaseGains(t *testing.T) {
	det, err := envelope.NewFullWavePeak[sample.F64](1, 2, 4)
	if err != nil {
		t.Fatalf("NewFullWavePeak: %v", err)
	}

	attackGain := math.Exp(-1.0 / 2.0)
	releaseGain := math.Exp(-1.0 / 4.0)

	// Rising input engages the attack gain.
	got := det.Next(frame.Frame[sample.F64]{1.0})
	wantRise := 1.0 + (0.0-1.0)*attackGain
	if math.Abs(got[0]-wantRise) > 1e-12 {
		t.Fatalf("rising envelope = %v, want %v", got[0], wantRise)
	}

	// Falling input engages the release gain.
	got = det.Next(frame.Frame[sample.F64]{0.0})
	wantFall := 0.0 + (wantRise-0.0)*releaseGain
	if math.Abs(got[0]-wantFall) > 1e-12 {
		t.Fatalf("falling envelope = %v, want %v", got[0], wantFall)
	}
}

func TestHalfWaveDetector(t *testing.T) {
	det, err := envelope.NewNegativeHalfWavePeak[sample.F64](1, 0, 0)
	if err != nil {
		t.Fatalf("NewNegativeHalfWavePeak: %v", err)
	}

	got := det.Next(frame.Frame[sample.F64]{0.5})
	if got[0] != 0.0 {
		t.Errorf("positive input envelope = %v, want 0", got[0])
	}
	got = det.Next(frame.Frame[sample.F64]{-0.5})
	if got[0] != -0.5 {
		t.Errorf("negative input envelope = %v, want -0.5", got[0])
	}
}

func TestRMSDetector(t *testing.T) {
	det, err := envelope.NewRMSDetector[sample.F64](1, 4, 0, 0)
	if err != nil {
		t.Fatalf("NewRMSDetector: %v", err)
	}

	inputs := []float64{1.0, -1.0, 1.0, -1.0}
	want := []float64{0.5, 0.7071067811865476, 0.8660254037844386, 1.0}
	for i, in := range inputs {
		got := det.Next(frame.Frame[sample.F64]{in})
		if math.Abs(got[0]-want[i]) > 1e-12 {
			t.Errorf("frame %d: envelope = %v, want %v", i, got[0], want[i])
		}
	}
}

func TestSetTimesInSeconds(t *testing.T) {
	det, err := envelope.NewFullWavePeak[sample.F64](1, 0, 0)
	if err != nil {
		t.Fatalf("NewFullWavePeak: %v", err)
	}

	if err := det.SetAttackSeconds(0.1, 44100); err != nil {
		t.Errorf("SetAttackSeconds: %v", err)
	}
	if err := det.SetReleaseSeconds(0.1, 0); err == nil {
		t.Error("SetReleaseSeconds with zero rate did not fail")
	}
}

func TestFollow(t *testing.T) {
	src, err := signal.FromFrames(1, testutil.MonoFrames(0.5, -0.5, 0.25))
	if err != nil {
		t.Fatalf("FromFrames: %v", err)
	}

	det, err := envelope.NewFullWavePeak[sample.F64](1, 0, 0)
	if err != nil {
		t.Fatalf("NewFullWavePeak: %v", err)
	}

	env, err := envelope.Follow(src, det)
	if err != nil {
		t.Fatalf("Follow: %v", err)
	}

	got := signal.Frames(env, 3)
	testutil.RequireFramesNearlyEqual(t, got, testutil.MonoFrames(0.5, 0.5, 0.25), 1e-12)
	if !env.Exhausted() {
		t.Error("envelope of drained source not exhausted")
	}
}

func TestFollowChannelMismatch(t *testing.T) {
	stereo, err := signal.Equilibrium[sample.F64](2)
	if err != nil {
		t.Fatalf("Equilibrium: %v", err)
	}

	det, err := envelope.NewFullWavePeak[sample.F64](1, 0, 0)
	if err != nil {
		t.Fatalf("NewFullWavePeak: %v", err)
	}

	if _, err := envelope.Follow(stereo, det); err == nil {
		t.Error("channel mismatch did not fail")
	}
}
