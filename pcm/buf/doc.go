// Package buf bridges interleaved sample storage to the go-audio buffer
// types, so decoded audio can enter the frame and signal layers and
// processed audio can leave them.
package buf
