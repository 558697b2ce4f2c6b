package envelope

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/peak"
	"github.com/cwbudde/algo-pcm/pcm/rms"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// Detect reduces an input frame to a detected magnitude per channel in
// float space. The returned frame is scratch storage valid until the next
// call.
type Detect[S sample.Sample] interface {
	Detect(f frame.Frame[S]) frame.Frame[sample.F64]
	Channels() int
}

// Peak detects the rectified magnitude of each frame.
type Peak[S sample.Sample] struct {
	rectify peak.Rectifier[S]
	scratch frame.Frame[S]
	out     frame.Frame[sample.F64]
}

// NewPeak returns a peak strategy using the given rectifier.
func NewPeak[S sample.Sample](channels int, rectifier peak.Rectifier[S]) (*Peak[S], error) {
	scratch, err := frame.New[S](channels)
	if err != nil {
		return nil, err
	}

	return &Peak[S]{
		rectify: rectifier,
		scratch: scratch,
		out:     make(frame.Frame[sample.F64], channels),
	}, nil
}

func (p *Peak[S]) Detect(f frame.Frame[S]) frame.Frame[sample.F64] {
	p.scratch.CopyFrom(f)
	p.rectify(p.scratch)
	for i := range p.out {
		p.out[i] = sample.ToFloat64(p.scratch[i])
	}

	return p.out
}

func (p *Peak[S]) Channels() int { return len(p.scratch) }

// RMS detects the windowed root-mean-square magnitude of the stream.
type RMS[S sample.Sample] struct {
	meter *rms.RMS[S]
}

// NewRMS returns an RMS strategy over the given window.
func NewRMS[S sample.Sample](channels, windowFrames int) (*RMS[S], error) {
	meter, err := rms.New[S](channels, windowFrames)
	if err != nil {
		return nil, err
	}

	return &RMS[S]{meter: meter}, nil
}

func (r *RMS[S]) Detect(f frame.Frame[S]) frame.Frame[sample.F64] {
	return r.meter.Next(f)
}

func (r *RMS[S]) Channels() int { return r.meter.Channels() }

// Detector follows the envelope of a stream with a per-channel exponential
// smoother. A rising detected magnitude is tracked with the attack gain, a
// falling one with the release gain.
type Detector[S sample.Sample] struct {
	detect      Detect[S]
	last        frame.Frame[sample.F64]
	out         frame.Frame[sample.F64]
	attackGain  float64
	releaseGain float64
}

// gainFor converts a time constant in frames to a per-frame feedback gain.
func gainFor(nFrames float64) float64 {
	if nFrames <= 0 {
		return 0
	}

	return math.Exp(-1.0 / nFrames)
}

// New returns a Detector over the given strategy. Attack and release are
// time constants in frames; zero makes the follower track instantly.
func New[S sample.Sample](detect Detect[S], attackFrames, releaseFrames float64) *Detector[S] {
	channels := detect.Channels()

	return &Detector[S]{
		detect:      detect,
		last:        make(frame.Frame[sample.F64], channels),
		out:         make(frame.Frame[sample.F64], channels),
		attackGain:  gainFor(attackFrames),
		releaseGain: gainFor(releaseFrames),
	}
}

// NewFullWavePeak returns a full-wave peak detector.
func NewFullWavePeak[S sample.Sample](channels int, attackFrames, releaseFrames float64) (*Detector[S], error) {
	p, err := NewPeak[S](channels, peak.FullWave[S])
	if err != nil {
		return nil, err
	}

	return New(p, attackFrames, releaseFrames), nil
}

// NewPositiveHalfWavePeak returns a positive half-wave peak detector.
func NewPositiveHalfWavePeak[S sample.Sample](channels int, attackFrames, releaseFrames float64) (*Detector[S], error) {
	p, err := NewPeak[S](channels, peak.PositiveHalfWave[S])
	if err != nil {
		return nil, err
	}

	return New(p, attackFrames, releaseFrames), nil
}

// NewNegativeHalfWavePeak returns a negative half-wave peak detector.
func NewNegativeHalfWavePeak[S sample.Sample](channels int, attackFrames, releaseFrames float64) (*Detector[S], error) {
	p, err := NewPeak[S](channels, peak.NegativeHalfWave[S])
	if err != nil {
		return nil, err
	}

	return New(p, attackFrames, releaseFrames), nil
}

// NewRMSDetector returns a detector smoothing a sliding RMS window.
func NewRMSDetector[S sample.Sample](channels, windowFrames int, attackFrames, releaseFrames float64) (*Detector[S], error) {
	r, err := NewRMS[S](channels, windowFrames)
	if err != nil {
		return nil, err
	}

	return New(r, attackFrames, releaseFrames), nil
}

// SetAttackFrames changes the attack time constant in frames.
func (d *Detector[S]) SetAttackFrames(frames float64) {
	d.attackGain = gainFor(frames)
}

// SetReleaseFrames changes the release time constant in frames.
func (d *Detector[S]) SetReleaseFrames(frames float64) {
	d.releaseGain = gainFor(frames)
}

// SetAttackSeconds changes the attack time constant given a sample rate in
// frames per second.
func (d *Detector[S]) SetAttackSeconds(seconds, sampleRate float64) error {
	if !(sampleRate > 0) {
		return fmt.Errorf("envelope: invalid sample rate %v", sampleRate)
	}
	d.SetAttackFrames(seconds * sampleRate)

	return nil
}

// SetReleaseSeconds changes the release time constant given a sample rate
// in frames per second.
func (d *Detector[S]) SetReleaseSeconds(seconds, sampleRate float64) error {
	if !(sampleRate > 0) {
		return fmt.Errorf("envelope: invalid sample rate %v", sampleRate)
	}
	d.SetReleaseFrames(seconds * sampleRate)

	return nil
}

// Channels returns the channel count of detected envelope frames.
func (d *Detector[S]) Channels() int { return len(d.last) }

// Next feeds one input frame and returns the next envelope frame. The
// returned frame is scratch storage valid until the next call.
func (d *Detector[S]) Next(f frame.Frame[S]) frame.Frame[sample.F64] {
	detected := d.detect.Detect(f)
	for i := range d.last {
		gain := d.releaseGain
		if d.last[i] < detected[i] {
			gain = d.attackGain
		}
		d.last[i] = detected[i] + (d.last[i]-detected[i])*gain
	}
	d.out.CopyFrom(d.last)

	return d.out
}
