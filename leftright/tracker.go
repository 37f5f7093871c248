// File: leftright/tracker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reader arrival tracker: one padded counter pair per reader slot. A reader
// increments the counter for the instance index it is about to observe and
// decrements it when done; the writer polls the column for the index it
// wants to reclaim until every slot reads zero.
//
// Counters are additive rather than flags, matching the original Left-Right
// indicator arrays: if two goroutines share a slot the counts still sum
// correctly, so sharing degrades drain latency, never safety.

package leftright

import (
	"sync/atomic"

	"github.com/momentics/leftright/internal/concurrency"
)

// readerSlot is one reader identity's counter pair, padded so that adjacent
// slots do not share a cache line with each other or with the lock's cold
// fields.
type readerSlot struct {
	count [2]atomic.Int64
	_     concurrency.CacheLinePad
}

// tracker is the arrival/departure ledger for all reader slots.
type tracker struct {
	slots []readerSlot
}

func newTracker(capacity int) *tracker {
	return &tracker{slots: make([]readerSlot, capacity)}
}

// arrive announces that slot is about to observe instance idx. Must be
// ordered before any access to the instance; sync/atomic guarantees this.
func (t *tracker) arrive(slot, idx int) {
	t.slots[slot].count[idx].Add(1)
}

// depart announces that slot has finished observing instance idx.
func (t *tracker) depart(slot, idx int) {
	t.slots[slot].count[idx].Add(-1)
}

// isQuiescent reports whether no reader is currently registered against
// instance idx. Writer-only; non-blocking, intended for poll loops.
func (t *tracker) isQuiescent(idx int) bool {
	for s := range t.slots {
		if t.slots[s].count[idx].Load() != 0 {
			return false
		}
	}
	return true
}
