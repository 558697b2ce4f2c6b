package sample

import "fmt"

// Logical value ranges of the non-native widths.
const (
	MinI11 I11 = -1 << 10
	MaxI11 I11 = 1<<10 - 1
	MaxU11 U11 = 1<<11 - 1

	MinI20 I20 = -1 << 19
	MaxI20 I20 = 1<<19 - 1
	MaxU20 U20 = 1<<20 - 1

	MinI24 I24 = -1 << 23
	MaxI24 I24 = 1<<23 - 1
	MaxU24 U24 = 1<<24 - 1

	MinI48 I48 = -1 << 47
	MaxI48 I48 = 1<<47 - 1
	MaxU48 U48 = 1<<48 - 1
)

// NewI11 validates that v fits within 11 signed bits.
func NewI11(v int16) (I11, error) {
	if v < int16(MinI11) || v > int16(MaxI11) {
		return 0, fmt.Errorf("%w: %d outside 11-bit signed range", ErrOutOfRange, v)
	}

	return I11(v), nil
}

// NewU11 validates that v fits within 11 unsigned bits.
func NewU11(v uint16) (U11, error) {
	if v > uint16(MaxU11) {
		return 0, fmt.Errorf("%w: %d outside 11-bit unsigned range", ErrOutOfRange, v)
	}

	return U11(v), nil
}

// NewI20 validates that v fits within 20 signed bits.
func NewI20(v int32) (I20, error) {
	if v < int32(MinI20) || v > int32(MaxI20) {
		return 0, fmt.Errorf("%w: %d outside 20-bit signed range", ErrOutOfRange, v)
	}

	return I20(v), nil
}

// NewU20 validates that v fits within 20 unsigned bits.
func NewU20(v uint32) (U20, error) {
	if v > uint32(MaxU20) {
		return 0, fmt.Errorf("%w: %d outside 20-bit unsigned range", ErrOutOfRange, v)
	}

	return U20(v), nil
}

// NewI24 validates that v fits within 24 signed bits.
func NewI24(v int32) (I24, error) {
	if v < int32(MinI24) || v > int32(MaxI24) {
		return 0, fmt.Errorf("%w: %d outside 24-bit signed range", ErrOutOfRange, v)
	}

	return I24(v), nil
}

// NewU24 validates that v fits within 24 unsigned bits.
func NewU24(v uint32) (U24, error) {
	if v > uint32(MaxU24) {
		return 0, fmt.Errorf("%w: %d outside 24-bit unsigned range", ErrOutOfRange, v)
	}

	return U24(v), nil
}

// NewI48 validates that v fits within 48 signed bits.
func NewI48(v int64) (I48, error) {
	if v < int64(MinI48) || v > int64(MaxI48) {
		return 0, fmt.Errorf("%w: %d outside 48-bit signed range", ErrOutOfRange, v)
	}

	return I48(v), nil
}

// NewU48 validates that v fits within 48 unsigned bits.
func NewU48(v uint64) (U48, error) {
	if v > uint64(MaxU48) {
		return 0, fmt.Errorf("%w: %d outside 48-bit unsigned range", ErrOutOfRange, v)
	}

	return U48(v), nil
}

// I11Clamped limits v to the 11-bit signed range.
func I11Clamped(v int16) I11 {
	return I11(min(max(v, int16(MinI11)), int16(MaxI11)))
}

// U11Clamped limits v to the 11-bit unsigned range.
func U11Clamped(v uint16) U11 {
	return U11(min(v, uint16(MaxU11)))
}

// I20Clamped limits v to the 20-bit signed range.
func I20Clamped(v int32) I20 {
	return I20(min(max(v, int32(MinI20)), int32(MaxI20)))
}

// U20Clamped limits v to the 20-bit unsigned range.
func U20Clamped(v uint32) U20 {
	return U20(min(v, uint32(MaxU20)))
}

// I24Clamped limits v to the 24-bit signed range.
func I24Clamped(v int32) I24 {
	return I24(min(max(v, int32(MinI24)), int32(MaxI24)))
}

// U24Clamped limits v to the 24-bit unsigned range.
func U24Clamped(v uint32) U24 {
	return U24(min(v, uint32(MaxU24)))
}

// I48Clamped limits v to the 48-bit signed range.
func I48Clamped(v int64) I48 {
	return I48(min(max(v, int64(MinI48)), int64(MaxI48)))
}

// U48Clamped limits v to the 48-bit unsigned range.
func U48Clamped(v uint64) U48 {
	return U48(min(v, uint64(MaxU48)))
}
