// Package frame models a single multi-channel PCM frame, one sample per
// channel at one instant in time. A Frame is a slice view whose length is its
// channel count; operations mutate in place or write into caller-supplied
// destinations so the hot path stays allocation free.
//
// Binary operations are lock-step: both operands must have the same channel
// count. Construction-time APIs validate shapes and return errors; the
// per-frame operations document the invariant instead of re-checking it.
package frame
