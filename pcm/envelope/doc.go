// Package envelope follows the magnitude contour of a signal.
//
// A Detector combines a detection strategy (peak rectification or a sliding
// RMS window) with a per-channel exponential follower whose attack and
// release times are given in frames. Follow adapts a Detector into a signal
// yielding the envelope of its input.
package envelope
