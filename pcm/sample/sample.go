package sample

import "math"

// Native-width formats reuse the built-in numeric types so that literals and
// existing PCM buffers interoperate without wrapping.
type (
	I8  = int8
	I16 = int16
	I32 = int32
	I64 = int64
	U8  = uint8
	U16 = uint16
	U32 = uint32
	U64 = uint64
	F32 = float32
	F64 = float64
)

// Non-native widths are stored in the next larger native integer and carry
// 11, 20, 24 or 48 significant bits. Direct conversion (for example I24(v))
// is unchecked; use the New* constructors to validate the logical range.
type (
	I11 int16
	U11 uint16
	I20 int32
	U20 uint32
	I24 int32
	U24 uint32
	I48 int64
	U48 uint64
)

// Sample is the closed set of supported PCM sample formats.
type Sample interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		I11 | U11 | I20 | U20 | I24 | U24 | I48 | U48
}

// Identity is the multiplicative neutral amplitude, expressed in float space
// as in every amplitude-scaling operation of this module.
const Identity = 1.0

// Equilibrium returns the value representing silence in format S: zero for
// signed integer and float formats, the midpoint for unsigned formats.
func Equilibrium[S Sample]() S {
	return fromBits[S](0)
}

// bits returns the left-aligned signed 64-bit representation of s. Integer
// payloads are shifted to the top bits, unsigned formats are offset by their
// midpoint first so that equilibrium maps to zero. Float formats scale onto
// the full 64-bit range with truncation toward zero.
func bits[S Sample](s S) int64 {
	switch v := any(s).(type) {
	case int8:
		return int64(v) << 56
	case I11:
		return int64(v) << 53
	case int16:
		return int64(v) << 48
	case I20:
		return int64(v) << 44
	case I24:
		return int64(v) << 40
	case int32:
		return int64(v) << 32
	case I48:
		return int64(v) << 16
	case int64:
		return v
	case uint8:
		return (int64(v) - 1<<7) << 56
	case U11:
		return (int64(v) - 1<<10) << 53
	case uint16:
		return (int64(v) - 1<<15) << 48
	case U20:
		return (int64(v) - 1<<19) << 44
	case U24:
		return (int64(v) - 1<<23) << 40
	case uint32:
		return (int64(v) - 1<<31) << 32
	case U48:
		return (int64(v) - 1<<47) << 16
	case uint64:
		return int64(v - 1<<63)
	case float32:
		return floatToSigned(float64(v), 64)
	case float64:
		return floatToSigned(v, 64)
	}
	panic("sample: format not in Sample set")
}

// fromBits is the inverse of bits: it right-aligns b into format S,
// re-applying the midpoint offset for unsigned formats and dividing by the
// full scale for float formats.
func fromBits[S Sample](b int64) S {
	var out S
	switch p := any(&out).(type) {
	case *int8:
		*p = int8(b >> 56)
	case *I11:
		*p = I11(b >> 53)
	case *int16:
		*p = int16(b >> 48)
	case *I20:
		*p = I20(b >> 44)
	case *I24:
		*p = I24(b >> 40)
	case *int32:
		*p = int32(b >> 32)
	case *I48:
		*p = I48(b >> 16)
	case *int64:
		*p = b
	case *uint8:
		*p = uint8(b>>56 + 1<<7)
	case *U11:
		*p = U11(b>>53 + 1<<10)
	case *uint16:
		*p = uint16(b>>48 + 1<<15)
	case *U20:
		*p = U20(b>>44 + 1<<19)
	case *U24:
		*p = U24(b>>40 + 1<<23)
	case *uint32:
		*p = uint32(b>>32 + 1<<31)
	case *U48:
		*p = U48(b>>16 + 1<<47)
	case *uint64:
		*p = uint64(b) + 1<<63
	case *float32:
		*p = float32(math.Ldexp(float64(b), -63))
	case *float64:
		*p = math.Ldexp(float64(b), -63)
	}
	return out
}

// floatToSigned maps v in [-1.0, 1.0) onto a signed integer of the given bit
// width, truncating toward zero. Values at or beyond the half-open range
// saturate at the integer bounds so the result is defined for any input.
func floatToSigned(v float64, width uint) int64 {
	maxVal := int64(math.MaxInt64) >> (64 - width)
	if v >= 1.0 {
		return maxVal
	}
	if v <= -1.0 {
		return -maxVal - 1
	}
	// Scaling by a power of two is exact; the conversion truncates.
	return int64(math.Ldexp(v, int(width)-1))
}
