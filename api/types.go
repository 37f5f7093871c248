// File: api/types.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared API-level type declarations and DTOs.

package api

// Stats is a point-in-time snapshot of lock activity counters.
//
// Collection is optional; a lock constructed without stats reports zeroes.
// Counters are monotonic for the lifetime of the lock.
type Stats struct {
	// Reads is the number of completed read operations.
	Reads int64

	// Writes is the number of completed write operations. A combined batch
	// counts each applied mutator once.
	Writes int64

	// Flips is the number of indicator flips performed by writers.
	Flips int64

	// ReaderRetries is the number of times a reader observed the indicator
	// move between its arrival and its re-check, and had to re-register.
	ReaderRetries int64

	// DrainPolls is the number of quiescence polls writers performed while
	// waiting for readers to vacate the previously visible instance.
	DrainPolls int64
}
