// File: leftright/lock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LeftRight lock: dual-instance store and write coordinator. See doc.go for
// the protocol overview and the paper reference.

package leftright

import (
	"errors"
	"fmt"
	"sync"

	"github.com/momentics/leftright/api"
	"github.com/momentics/leftright/internal/concurrency"
)

// Ensure compile-time interface compliance.
var _ api.Shared[struct{}] = (*LeftRight[struct{}])(nil)

// LeftRight keeps two instances of T. Readers observe the instance named by
// the indicator; the single serialized writer mutates the other one, flips,
// drains, and mutates again so both instances stay logically equal after
// every completed write.
type LeftRight[T any] struct {
	instances [2]*T
	ind       indicator
	trk       *tracker

	// wmu serializes writers. Readers never touch it.
	wmu sync.Mutex

	backoff api.Backoff
	stats   *lockStats // nil when collection is disabled
}

// New constructs a LeftRight lock. The factory is invoked twice to produce
// two independent instances; capacity fixes the number of reader slots for
// the lifetime of the lock.
func New[T any](factory func() *T, capacity int, opts ...Option) (*LeftRight[T], error) {
	if factory == nil {
		return nil, api.ErrNilFactory
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", api.ErrInvalidCapacity, capacity)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &LeftRight[T]{
		instances: [2]*T{factory(), factory()},
		trk:       newTracker(capacity),
		backoff:   cfg.backoff,
	}
	if cfg.statsEnabled {
		l.stats = &lockStats{}
	}
	return l, nil
}

// DefaultCapacity returns a reader-slot capacity suited to one slot per
// schedulable CPU, the natural sizing when readers are pinned worker
// goroutines.
func DefaultCapacity() int {
	return concurrency.NumSchedulableCPUs()
}

// Capacity returns the fixed number of reader slots.
func (l *LeftRight[T]) Capacity() int {
	return len(l.trk.slots)
}

// Read invokes observer against an instance guaranteed not to be under
// concurrent mutation. It never blocks on writers and completes in a bounded
// number of steps regardless of contention.
//
// readerID selects the tracking slot and must lie in [0, Capacity()).
// Binding a slot to a goroutine is the caller's convention; slots tolerate
// sharing (counters are additive) at the cost of coupled drain waits.
//
// The observer must not mutate the instance, must return in bounded time,
// and must not call back into this lock. A panic inside the observer
// propagates, but the slot departs on unwind so later writers cannot wedge.
func (l *LeftRight[T]) Read(readerID int, observer func(*T)) error {
	if readerID < 0 || readerID >= len(l.trk.slots) {
		return fmt.Errorf("%w: reader %d, capacity %d",
			api.ErrReaderOutOfRange, readerID, len(l.trk.slots))
	}

	idx := l.enter(readerID)
	defer l.trk.depart(readerID, idx)

	observer(l.instances[idx])
	l.stats.addReads(1)
	return nil
}

// enter registers readerID against the current indicator value and
// re-checks until the registration and the indicator agree. Without the
// re-check a reader could stand counted against an index the writer already
// believes quiescent while observing the instance the writer is mutating.
// The loop runs once per indicator flip that interleaves with the arrival;
// with a single serialized writer that is at most one iteration in practice.
func (l *LeftRight[T]) enter(readerID int) int {
	idx := l.ind.current()
	l.trk.arrive(readerID, idx)
	for {
		cur := l.ind.current()
		if cur == idx {
			return idx
		}
		l.trk.depart(readerID, idx)
		l.trk.arrive(readerID, cur)
		idx = cur
		l.stats.addReaderRetries(1)
	}
}

// Write applies mutator exactly once to each instance before returning.
// Concurrent Write calls serialize; their mutators are applied in a single
// total order, the same order on both instances.
//
// The mutator must be deterministic with respect to the instance it is
// given: it runs once per instance, at different times, and both runs must
// produce the same logical result. It must return in bounded time and must
// not call back into this lock.
//
// A panic during the first application propagates with the indicator
// unflipped and the writer section released: readers never saw the
// partially mutated hidden instance, so observed state stays consistent.
// The partial mutation does remain in the hidden instance, and the next
// write builds on it; after a panicking mutator the caller must treat the
// protected structure as suspect. A panic during the second application
// leaves the instances permanently divergent; mutators must not fail on
// their second application if they succeeded on their first.
func (l *LeftRight[T]) Write(mutator func(*T)) {
	l.wmu.Lock()
	defer l.wmu.Unlock()

	visible := l.ind.current()
	hidden := 1 - visible

	// No reader can be registered against the hidden instance: it has not
	// been the visible index since the previous drain completed.
	mutator(l.instances[hidden])

	l.ind.flip(hidden)
	l.stats.addFlips(1)

	l.drain(visible)
	mutator(l.instances[visible])
	l.stats.addWrites(1)
}

// TryWrite is Write for fallible mutators. An error from the first
// application aborts before the flip; no reader ever observed the hidden
// instance, and whatever the failed mutator left behind there is the
// caller's to reconcile (same obligation as a panicking mutator in Write).
// An error from the second application is reported joined with
// api.ErrCopiesDiverged, because the instances can no longer agree.
func (l *LeftRight[T]) TryWrite(mutator func(*T) error) error {
	l.wmu.Lock()
	defer l.wmu.Unlock()

	visible := l.ind.current()
	hidden := 1 - visible

	if err := mutator(l.instances[hidden]); err != nil {
		return err
	}

	l.ind.flip(hidden)
	l.stats.addFlips(1)

	l.drain(visible)
	if err := mutator(l.instances[visible]); err != nil {
		return errors.Join(api.ErrCopiesDiverged, err)
	}
	l.stats.addWrites(1)
	return nil
}

// writeBatch applies an ordered set of mutators with a single flip and a
// single drain. Caller must hold wmu. Used by the combiner.
func (l *LeftRight[T]) writeBatch(mutators []func(*T)) {
	visible := l.ind.current()
	hidden := 1 - visible

	for _, m := range mutators {
		m(l.instances[hidden])
	}

	l.ind.flip(hidden)
	l.stats.addFlips(1)

	l.drain(visible)
	for _, m := range mutators {
		m(l.instances[visible])
	}
	l.stats.addWrites(int64(len(mutators)))
}

// drain polls until no reader remains registered against instance idx.
// Readers in flight are awaited, never interrupted. This is the writer's
// only suspension point besides wmu itself; the poll is unbounded by design,
// so a reader whose observer never returns deadlocks the writer (documented
// caller obligation).
func (l *LeftRight[T]) drain(idx int) {
	for attempt := 0; !l.trk.isQuiescent(idx); attempt++ {
		l.backoff.Wait(attempt)
		l.stats.addDrainPolls(1)
	}
}

// Stats returns a snapshot of the lock's activity counters. Zero when the
// lock was constructed without WithStatsEnabled.
func (l *LeftRight[T]) Stats() api.Stats {
	return l.stats.snapshot()
}

// ReadValue invokes observer against a safe instance and returns its result.
// Methods cannot introduce type parameters, hence the package-level form.
func ReadValue[T, R any](l *LeftRight[T], readerID int, observer func(*T) R) (R, error) {
	var out R
	err := l.Read(readerID, func(t *T) {
		out = observer(t)
	})
	return out, err
}
