package signal

import (
	"math"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

type noise struct {
	seed uint64
	out  frame.Frame[sample.F64]
}

// Noise returns an endless mono white-noise signal in [-1, 1), deterministic
// for a given seed.
func Noise(seed uint64) Signal[sample.F64] {
	return &noise{seed: seed, out: make(frame.Frame[sample.F64], 1)}
}

func (n *noise) Next() frame.Frame[sample.F64] {
	// One-dimensional value noise after Hugo Elias' primer.
	const (
		prime1 uint64 = 15731
		prime2 uint64 = 789221
		prime3 uint64 = 1376312589
	)

	x := (n.seed << 13) ^ n.seed
	n.out[0] = 1.0 - float64((x*(x*x*prime1+prime2)+prime3)&0x7fffffff)/1073741824.0
	n.seed++

	return n.out
}

func (n *noise) Exhausted() bool { return false }
func (n *noise) Channels() int   { return 1 }

type noiseSimplex struct {
	phase *Phase
	out   frame.Frame[sample.F64]
}

// NoiseSimplex returns an endless mono 1D simplex-noise signal walking at
// the rate of the given phase.
func NoiseSimplex(phase *Phase) Signal[sample.F64] {
	return &noiseSimplex{phase: phase, out: make(frame.Frame[sample.F64], 1)}
}

func (n *noiseSimplex) Next() frame.Frame[sample.F64] {
	// 2^16 is the first power of two past double the human hearing range,
	// so the walk can move at audible rates without repeating within a
	// second.
	const twoPowSixteen = 65536.0

	n.out[0] = simplexNoise1D(n.phase.NextPhaseWrappedTo(twoPowSixteen))

	return n.out
}

func (n *noiseSimplex) Exhausted() bool { return false }
func (n *noiseSimplex) Channels() int   { return 1 }

// simplexPerm is a fixed jumble of all values 0..255 used to hash lattice
// coordinates.
var simplexPerm = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36,
	103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148, 247, 120, 234, 75, 0,
	26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33, 88, 237, 149, 56, 87,
	174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166, 77, 146,
	158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40,
	244, 102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18,
	169, 200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206,
	59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213, 119, 248, 152, 2,
	44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9, 129, 22, 39, 253, 19, 98,
	108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228, 251, 34, 242,
	193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4,
	150, 254, 138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66,
	215, 61, 156, 180,
}

// simplexNoise1D yields a noise value in -1..1 for the coordinate x, zero on
// integer coordinates. Adapted from SRombauts' SimplexNoise.
func simplexNoise1D(x float64) float64 {
	grad := func(hash uint8, x float64) float64 {
		h := hash & 0x0F
		g := 1.0 + float64(h&7)
		if h&8 != 0 {
			g = -g
		}

		return g * x
	}

	i0 := int64(math.Floor(x))
	i1 := i0 + 1

	x0 := x - float64(i0)
	x1 := x0 - 1.0

	t0 := 1.0 - x0*x0
	t0 *= t0
	n0 := t0 * t0 * grad(simplexPerm[uint8(i0)], x0)

	t1 := 1.0 - x1*x1
	t1 *= t1
	n1 := t1 * t1 * grad(simplexPerm[uint8(i1)], x1)

	// The raw maximum is 2.53125; 0.395 scales into -1..1 exactly.
	return 0.395 * (n0 + n1)
}
