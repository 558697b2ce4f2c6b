// Package window provides amplitude windows over a normalized phase in
// [0, 1]: the raised-cosine Hann window and the trivial Rectangle window.
// Coefficient tables serve block processing, the signal adapters apply a
// window across a stream one frame at a time.
package window
