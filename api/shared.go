// File: api/shared.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract for doubly-instantiated shared state with wait-free readers.

package api

// Shared is the access contract for a structure kept in two instances, where
// readers are never blocked by the single serialized writer.
//
// Read invokes observer against an instance guaranteed not to be concurrently
// mutated. The observer must not modify the instance and must return in
// bounded time. readerID identifies the caller's tracking slot and must lie
// in [0, capacity).
//
// Write invokes mutator exactly once against each instance before returning,
// so that both instances converge to the same logical state. The mutator must
// be deterministic with respect to the instance it is given.
type Shared[T any] interface {
	Read(readerID int, observer func(*T)) error
	Write(mutator func(*T))
	TryWrite(mutator func(*T) error) error
	Capacity() int
}

// Backoff decides how a polling loop yields between attempts.
//
// Wait is called with a 0-based attempt counter that resets whenever the
// polled condition is re-established. Implementations must not block
// indefinitely for any single attempt.
type Backoff interface {
	Wait(attempt int)
}
