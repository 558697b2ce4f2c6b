package peak

import (
	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

// Rectifier rewrites a frame in place for envelope detection. The package's
// FullWave, PositiveHalfWave and NegativeHalfWave functions are the standard
// strategies.
type Rectifier[S sample.Sample] func(frame.Frame[S])

// FullWave rectifies every channel to its magnitude around equilibrium.
func FullWave[S sample.Sample](f frame.Frame[S]) {
	f.Map(sample.Abs[S])
}

// PositiveHalfWave keeps channels at or above equilibrium and silences the
// rest.
func PositiveHalfWave[S sample.Sample](f frame.Frame[S]) {
	f.Map(sample.PositiveHalf[S])
}

// NegativeHalfWave keeps channels at or below equilibrium and silences the
// rest.
func NegativeHalfWave[S sample.Sample](f frame.Frame[S]) {
	f.Map(sample.NegativeHalf[S])
}
