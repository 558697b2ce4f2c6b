// Package ring provides fixed-capacity ring buffers over caller-supplied
// storage. Fixed always holds exactly its capacity and eviction is implicit;
// Bounded grows up to its capacity and supports popping the oldest element.
// Neither allocates after construction.
package ring
