package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangle Type = iota
	TypeHann
)

// At returns the amplitude of the window at a normalized phase in [0, 1].
func At(t Type, phase float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 * (1.0 - math.Cos(2*math.Pi*phase))
	default:
		return 1.0
	}
}

// Hann returns the raised-cosine amplitude at phase.
func Hann(phase float64) float64 {
	return At(TypeHann, phase)
}

// Rectangle returns unity for any phase.
func Rectangle(_ float64) float64 {
	return 1.0
}

// Option configures coefficient generation.
type Option func(*config)

type config struct {
	periodic bool
}

func defaultConfig() config {
	return config{}
}

// WithPeriodic generates the periodic form (phase denominator n instead of
// n-1), suited to overlapped framing.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Coefficients generates a table of size window amplitudes. The symmetric
// form spans the phase range endpoint to endpoint; the periodic form stops
// one step short.
func Coefficients(t Type, size int, opts ...Option) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, size)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	den := float64(size - 1)
	if cfg.periodic {
		den = float64(size)
	}

	out := make([]float64, size)
	if den == 0 {
		out[0] = At(t, 0)

		return out, nil
	}
	for i := range out {
		out[i] = At(t, float64(i)/den)
	}

	return out, nil
}

// Apply multiplies samples by coefficients element-wise in place.
func Apply(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("%w: %d samples, %d coefficients", ErrLengthMismatch, len(samples), len(coeffs))
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}
