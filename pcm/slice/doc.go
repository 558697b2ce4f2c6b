// Package slice works on whole buffers of samples at once: carving
// channel-interleaved storage into frame views without copying, converting
// between sample formats in bulk, and amplitude math over float64 blocks
// backed by the vectorized kernels.
package slice
