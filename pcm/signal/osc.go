package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// Rate is a sample rate in frames per second, used to derive phase steps for
// the oscillator sources.
type Rate struct {
	hz float64
}

// NewRate validates the sample rate. It must be positive and finite.
func NewRate(samplesPerSec float64) (Rate, error) {
	if !(samplesPerSec > 0) || math.IsInf(samplesPerSec, 1) {
		return Rate{}, fmt.Errorf("%w: %v frames per second", ErrInvalidRate, samplesPerSec)
	}

	return Rate{hz: samplesPerSec}, nil
}

// Hz returns the rate in frames per second.
func (r Rate) Hz() float64 { return r.hz }

// Step yields successive phase step sizes, normally frequency divided by
// sample rate. Phase pulls one step per frame.
type Step interface {
	Step() float64
}

// ConstHz steps the phase by a fixed frequency.
type ConstHz struct {
	step float64
}

// ConstHz returns the constant phase step for a signal oscillating at hz.
func (r Rate) ConstHz(hz float64) *ConstHz {
	return &ConstHz{step: hz / r.hz}
}

// Step returns the constant step size.
func (c *ConstHz) Step() float64 { return c.step }

// Phase returns a phase accumulator driven by this step.
func (c *ConstHz) Phase() *Phase { return NewPhase(c) }

// VarHz steps the phase by a frequency read from a control signal, one value
// per frame.
type VarHz struct {
	hz   Signal[sample.F64]
	rate Rate
}

// VarHz returns a phase step source whose frequency is modulated by the
// first channel of hz.
func (r Rate) VarHz(hz Signal[sample.F64]) *VarHz {
	return &VarHz{hz: hz, rate: r}
}

// Step consumes one frame of the control signal and returns its frequency
// divided by the sample rate.
func (v *VarHz) Step() float64 {
	return v.hz.Next()[0] / v.rate.hz
}

// Phase returns a phase accumulator driven by this step.
func (v *VarHz) Phase() *Phase { return NewPhase(v) }

// Phase accumulates a step per frame, wrapping into [0, 1). It is itself a
// mono signal yielding the raw phase, and it drives the oscillator sources.
type Phase struct {
	step Step
	next float64
	out  frame.Frame[sample.F64]
}

// NewPhase returns a phase accumulator starting at zero.
func NewPhase(step Step) *Phase {
	return &Phase{step: step, out: make(frame.Frame[sample.F64], 1)}
}

// NextPhaseWrappedTo returns the current phase, then steps it forward and
// wraps the result via the given remainder.
func (p *Phase) NextPhaseWrappedTo(rem float64) float64 {
	ph := p.next
	p.next = math.Mod(p.next+p.step.Step(), rem)

	return ph
}

// NextPhase returns the current phase and steps forward, wrapping at 1.0.
func (p *Phase) NextPhase() float64 {
	return p.NextPhaseWrappedTo(1.0)
}

func (p *Phase) Next() frame.Frame[sample.F64] {
	p.out[0] = p.NextPhase()

	return p.out
}

func (p *Phase) Exhausted() bool { return false }
func (p *Phase) Channels() int   { return 1 }

type sine struct {
	phase *Phase
	out   frame.Frame[sample.F64]
}

// Sine returns a mono sine oscillator driven by the given phase.
func Sine(phase *Phase) Signal[sample.F64] {
	return &sine{phase: phase, out: make(frame.Frame[sample.F64], 1)}
}

func (s *sine) Next() frame.Frame[sample.F64] {
	s.out[0] = math.Sin(2 * math.Pi * s.phase.NextPhase())

	return s.out
}

func (s *sine) Exhausted() bool { return false }
func (s *sine) Channels() int   { return 1 }

type saw struct {
	phase *Phase
	out   frame.Frame[sample.F64]
}

// Saw returns a mono sawtooth oscillator descending from 1 to -1 over each
// phase cycle.
func Saw(phase *Phase) Signal[sample.F64] {
	return &saw{phase: phase, out: make(frame.Frame[sample.F64], 1)}
}

func (s *saw) Next() frame.Frame[sample.F64] {
	s.out[0] = s.phase.NextPhase()*-2.0 + 1.0

	return s.out
}

func (s *saw) Exhausted() bool { return false }
func (s *saw) Channels() int   { return 1 }

type square struct {
	phase *Phase
	out   frame.Frame[sample.F64]
}

// Square returns a mono square oscillator, high for the first half of each
// phase cycle.
func Square(phase *Phase) Signal[sample.F64] {
	return &square{phase: phase, out: make(frame.Frame[sample.F64], 1)}
}

func (s *square) Next() frame.Frame[sample.F64] {
	if s.phase.NextPhase() < 0.5 {
		s.out[0] = 1.0
	} else {
		s.out[0] = -1.0
	}

	return s.out
}

func (s *square) Exhausted() bool { return false }
func (s *square) Channels() int   { return 1 }
