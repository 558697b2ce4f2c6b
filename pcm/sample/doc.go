// Package sample defines the PCM sample formats supported by this module and
// bit-exact conversion between them.
//
// Native-width formats reuse the built-in numeric types (int8 through int64,
// uint8 through uint64, float32 and float64). Non-native widths (11, 20, 24
// and 48 significant bits) are defined types stored in the next larger native
// integer and validated on construction.
//
// Conversion follows fixed rules so that results are reproducible bit for
// bit: widening integer conversions zero-fill low bits, narrowing conversions
// discard them, signedness flips offset by the midpoint so that silence maps
// to silence, and float conversions map the half-open range [-1.0, 1.0) onto
// the integer's full range with truncation toward zero.
package sample
