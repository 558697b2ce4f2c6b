package sample

import "math"

// AddAmp sums a and b in signed amplitude space. Float formats add directly;
// integer formats add their signed representations with two's-complement
// wrapping on overflow.
func AddAmp[S Sample](a, b S) S {
	switch va := any(a).(type) {
	case float32:
		return any(va + any(b).(float32)).(S)
	case float64:
		return any(va + any(b).(float64)).(S)
	default:
		return fromBits[S](bits(a) + bits(b))
	}
}

// MulAmp scales s by the float multiplier amp. Integer formats round-trip
// through float space and truncate toward zero on the way back.
func MulAmp[S Sample](s S, amp float64) S {
	switch v := any(s).(type) {
	case float32:
		return any(float32(float64(v) * amp)).(S)
	case float64:
		return any(v * amp).(S)
	default:
		return fromFloat[S](ToFloat64(s) * amp)
	}
}

// Clip limits the excursion of s around equilibrium to the magnitude of
// thresh, in signed amplitude space.
func Clip[S Sample](s, thresh S) S {
	switch v := any(s).(type) {
	case float32:
		t := any(thresh).(float32)
		if t < 0 {
			t = -t
		}

		return any(clipFloat(v, t)).(S)
	case float64:
		t := any(thresh).(float64)
		if t < 0 {
			t = -t
		}

		return any(clipFloat(v, t)).(S)
	default:
		tb := bits(thresh)
		if tb == math.MinInt64 {
			return s
		}
		if tb < 0 {
			tb = -tb
		}
		if b := bits(s); b > tb {
			return fromBits[S](tb)
		} else if b < -tb {
			return fromBits[S](-tb)
		}

		return s
	}
}

func clipFloat[F float32 | float64](v, t F) F {
	if v > t {
		return t
	}
	if v < -t {
		return -t
	}

	return v
}

// Abs rectifies s to its magnitude around equilibrium. The most negative
// integer value maps to the most positive one.
func Abs[S Sample](s S) S {
	switch v := any(s).(type) {
	case float32:
		return any(float32(math.Abs(float64(v)))).(S)
	case float64:
		return any(math.Abs(v)).(S)
	default:
		b := bits(s)
		if b >= 0 {
			return s
		}
		if b == math.MinInt64 {
			return fromBits[S](math.MaxInt64)
		}

		return fromBits[S](-b)
	}
}

// PositiveHalf passes s through when it is at or above equilibrium and
// returns equilibrium otherwise.
func PositiveHalf[S Sample](s S) S {
	if bits(s) < 0 {
		return Equilibrium[S]()
	}

	return s
}

// NegativeHalf passes s through when it is at or below equilibrium and
// returns equilibrium otherwise.
func NegativeHalf[S Sample](s S) S {
	if bits(s) > 0 {
		return Equilibrium[S]()
	}

	return s
}
