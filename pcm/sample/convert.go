package sample

import "math"

// To converts s to format T following the package's bit-exact rules.
// Converting a value to its own format is the identity; any chain of
// non-narrowing integer conversions round-trips exactly.
func To[T, S Sample](s S) T {
	switch v := any(s).(type) {
	case float32:
		return fromFloat[T](float64(v))
	case float64:
		return fromFloat[T](v)
	default:
		return fromBits[T](bits(s))
	}
}

// ToFloat64 converts s to its full-scale float64 amplitude.
func ToFloat64[S Sample](s S) float64 {
	switch v := any(s).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return math.Ldexp(float64(bits(s)), -63)
	}
}

// FromFloat64 converts a full-scale float64 amplitude to format S,
// truncating toward zero on integer formats.
func FromFloat64[S Sample](v float64) S {
	return fromFloat[S](v)
}

// fromFloat converts a float source directly into the target format. Float
// sources take this dedicated path because truncation must happen at the
// target's own width, not at 64 bits.
func fromFloat[T Sample](v float64) T {
	var out T
	switch p := any(&out).(type) {
	case *int8:
		*p = int8(floatToSigned(v, 8))
	case *I11:
		*p = I11(floatToSigned(v, 11))
	case *int16:
		*p = int16(floatToSigned(v, 16))
	case *I20:
		*p = I20(floatToSigned(v, 20))
	case *I24:
		*p = I24(floatToSigned(v, 24))
	case *int32:
		*p = int32(floatToSigned(v, 32))
	case *I48:
		*p = I48(floatToSigned(v, 48))
	case *int64:
		*p = floatToSigned(v, 64)
	case *uint8:
		*p = uint8(floatToSigned(v, 8) + 1<<7)
	case *U11:
		*p = U11(floatToSigned(v, 11) + 1<<10)
	case *uint16:
		*p = uint16(floatToSigned(v, 16) + 1<<15)
	case *U20:
		*p = U20(floatToSigned(v, 20) + 1<<19)
	case *U24:
		*p = U24(floatToSigned(v, 24) + 1<<23)
	case *uint32:
		*p = uint32(floatToSigned(v, 32) + 1<<31)
	case *U48:
		*p = U48(floatToSigned(v, 48) + 1<<47)
	case *uint64:
		*p = uint64(floatToSigned(v, 64)) + 1<<63
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	}
	return out
}
