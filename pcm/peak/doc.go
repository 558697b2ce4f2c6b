// Package peak rectifies frames for peak envelope detection. The three
// strategies are full-wave (magnitude around equilibrium), positive
// half-wave and negative half-wave; all operate in place and work in every
// sample format.
package peak
