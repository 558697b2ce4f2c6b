// Package signal provides a pull-based algebra over PCM frame streams.
//
// A Signal yields one frame per call to Next and never stops: once the
// underlying source runs out it reports Exhausted and keeps yielding
// equilibrium frames. Combinators wrap signals into new signals, advancing
// their children exactly once per output frame, left operand before right,
// so composed graphs stay deterministic.
//
// The frame returned by Next is scratch storage owned by the signal. It is
// valid until the following call to Next and the caller may mutate it; this
// keeps the steady-state hot path free of allocations. Bus is the one
// exception to the no-allocation rule, as fan-out must buffer for the
// slowest reader.
package signal
