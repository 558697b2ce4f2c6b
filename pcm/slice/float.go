package slice

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ScaleAmpInPlace multiplies every sample by amp.
func ScaleAmpInPlace(samples []float64, amp float64) {
	vecmath.ScaleBlockInPlace(samples, amp)
}

// AddAmpInPlace sums src into dst sample by sample. The buffers must have
// equal length.
func AddAmpInPlace(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d into %d", ErrLengthMismatch, len(src), len(dst))
	}

	vecmath.AddBlockInPlace(dst, src)

	return nil
}

// MulAmpInPlace multiplies dst by amps sample by sample. The buffers must
// have equal length.
func MulAmpInPlace(dst, amps []float64) error {
	if len(dst) != len(amps) {
		return fmt.Errorf("%w: %d into %d", ErrLengthMismatch, len(amps), len(dst))
	}

	vecmath.MulBlockInPlace(dst, amps)

	return nil
}

// PeakAmp returns the largest absolute amplitude in the buffer, zero for an
// empty buffer.
func PeakAmp(samples []float64) float64 {
	return vecmath.MaxAbs(samples)
}

// RMSAmp returns the root mean square amplitude of the buffer, zero for an
// empty buffer.
func RMSAmp(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(samples, samples) / float64(len(samples)))
}
