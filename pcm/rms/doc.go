// Package rms extracts a windowed root-mean-square envelope from a stream
// of frames. The meter keeps a ring of squared frames and a running square
// sum, so each update costs one subtraction and one addition per channel
// regardless of the window size.
package rms
