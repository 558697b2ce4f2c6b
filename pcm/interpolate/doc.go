// Package interpolate reconstructs a signal between its source frames and
// resamples it at an arbitrary rate.
//
// An Interpolator buffers recent source frames and evaluates the stream at a
// fractional position between them. Floor holds the previous frame, Linear
// blends the two neighbouring frames, and Sinc applies a windowed-sinc
// kernel over a history ring for higher quality at higher cost.
//
// Converter drives an Interpolator from a Signal: it accumulates a
// fractional read position by the source-to-target rate ratio, pulling
// source frames as the position crosses frame boundaries. MulHz is the
// dynamic variant, reading the playback-rate multiplier from a control
// signal once per output frame.
package interpolate
