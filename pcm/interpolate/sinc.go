package interpolate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/ring"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

type sincConfig struct {
	cutoff float64
}

func defaultSincConfig() sincConfig {
	return sincConfig{cutoff: 1.0}
}

// SincOption configures a Sinc interpolator.
type SincOption func(*sincConfig)

// WithCutoff lowers the kernel's normalized cutoff frequency below Nyquist.
// Useful for pre-filtering when downsampling. Must be in (0, 1]; the default
// of 1 leaves the kernel untouched.
func WithCutoff(cutoff float64) SincOption {
	return func(c *sincConfig) {
		c.cutoff = cutoff
	}
}

// Sinc applies a Hann-windowed sinc kernel over a ring of recent source
// frames. The ring length must be even; half of it is the kernel depth on
// each side of the read position. The ring's initial contents act as
// padding for the start of the stream.
type Sinc[S sample.Sample] struct {
	frames   *ring.Fixed[frame.Frame[S]]
	idx      int
	cutoff   float64
	channels int
	out      frame.Frame[S]
	spare    frame.Frame[S]
}

// NewSinc returns a Sinc interpolator reading history from the given ring.
// The ring is used in place and must not be shared.
func NewSinc[S sample.Sample](history *ring.Fixed[frame.Frame[S]], opts ...SincOption) (*Sinc[S], error) {
	if history.Len()%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrWindowLength, history.Len())
	}

	first, err := history.At(0)
	if err != nil {
		return nil, err
	}
	channels := len(first)
	if channels < 1 || channels > frame.MaxChannels {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", frame.ErrChannelCount, channels, frame.MaxChannels)
	}
	shapeErr := error(nil)
	history.Do(func(f frame.Frame[S]) {
		if len(f) != channels && shapeErr == nil {
			shapeErr = fmt.Errorf("%w: history frames have %d and %d channels", frame.ErrShapeMismatch, channels, len(f))
		}
	})
	if shapeErr != nil {
		return nil, shapeErr
	}

	cfg := defaultSincConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.cutoff > 0) || cfg.cutoff > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCutoff, cfg.cutoff)
	}

	return &Sinc[S]{
		frames:   history,
		cutoff:   cfg.cutoff,
		channels: channels,
		out:      make(frame.Frame[S], channels),
		spare:    make(frame.Frame[S], channels),
	}, nil
}

func (p *Sinc[S]) depth() int { return p.frames.Len() / 2 }

// Interpolate evaluates the kernel at position x between the frames either
// side of the current read index. Taps that would fall outside the history
// contribute equilibrium.
func (p *Sinc[S]) Interpolate(x float64) frame.Frame[S] {
	phil := x
	phir := 1.0 - x
	nl := p.idx
	nr := p.idx + 1
	depth := p.depth()

	maxDepth := depth
	if nl+depth >= p.frames.Len() {
		maxDepth = p.frames.Len() - depth
	} else if leftmost := nr - depth; leftmost < 0 {
		maxDepth = depth + leftmost
	}

	p.out.SetEquilibrium()
	for n := 0; n < maxDepth; n++ {
		p.accumulate(p.tap(nl-n), phil+float64(n))
		p.accumulate(p.tap(nr+n), phir+float64(n))
	}

	return p.out
}

// tap reads the i-th oldest history frame, wrapping indices into range.
func (p *Sinc[S]) tap(i int) frame.Frame[S] {
	n := p.frames.Len()
	f, _ := p.frames.At(((i % n) + n) % n)

	return f
}

// accumulate adds one weighted tap into the scratch frame.
func (p *Sinc[S]) accumulate(tap frame.Frame[S], phase float64) {
	a := math.Pi * phase
	first := p.cutoff
	if a != 0 {
		first = math.Sin(p.cutoff*a) / a
	}
	w := first * (0.5 + 0.5*math.Cos(a/float64(p.depth())))

	for c := range p.out {
		p.out[c] = sample.AddAmp(p.out[c], sample.FromFloat64[S](w*sample.ToFloat64(tap[c])))
	}
}

func (p *Sinc[S]) NextSourceFrame(f frame.Frame[S]) {
	p.spare.CopyFrom(f)
	p.spare = p.frames.Push(p.spare)

	if p.idx < p.depth() {
		p.idx++
	}
}

func (p *Sinc[S]) Reset() {
	p.frames.Do(func(f frame.Frame[S]) { f.SetEquilibrium() })
	p.idx = 0
}

func (p *Sinc[S]) Channels() int { return p.channels }
