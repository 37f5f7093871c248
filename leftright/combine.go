// File: leftright/combine.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Flat-combining writer. Concurrent writers enqueue their mutators; the one
// that acquires the writer section drains the queue and applies the whole
// batch with a single indicator flip and a single reader drain. Under write
// bursts this amortizes the drain wait across the batch while preserving
// the convergence invariant: every mutator is applied exactly once to each
// instance, in the same order on both.

package leftright

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/leftright/api"
	"github.com/momentics/leftright/internal/concurrency"
)

type pendingOp[T any] struct {
	fn   func(*T)
	done chan struct{}
}

// Combiner batches concurrent writes to a LeftRight lock. A Combiner and
// direct Write/TryWrite calls on the same lock may be mixed freely; both
// serialize on the lock's writer section.
type Combiner[T any] struct {
	lr *LeftRight[T]

	// mu guards pending. Held only for enqueue/drain, never while applying.
	mu      sync.Mutex
	pending *queue.Queue

	backoff api.Backoff
}

// NewCombiner returns a Combiner for l.
func NewCombiner[T any](l *LeftRight[T]) *Combiner[T] {
	return &Combiner[T]{
		lr:      l,
		pending: queue.New(),
		backoff: concurrency.NewSpinYield(),
	}
}

// Write enqueues mutator and returns once it has been applied to both
// instances. The calling goroutine either becomes the combiner (applies its
// own and its peers' pending mutators) or waits for a peer combiner to
// apply its mutator for it.
//
// Mutator obligations are those of LeftRight.Write. A panicking mutator
// additionally poisons its batch: co-batched writers are unblocked as if
// applied, and the panic surfaces in the combining goroutine.
func (c *Combiner[T]) Write(mutator func(*T)) {
	op := &pendingOp[T]{fn: mutator, done: make(chan struct{})}

	c.mu.Lock()
	c.pending.Add(op)
	c.mu.Unlock()

	for attempt := 0; ; attempt++ {
		select {
		case <-op.done:
			return
		default:
		}

		if c.lr.wmu.TryLock() {
			func() {
				defer c.lr.wmu.Unlock()
				c.combine()
			}()
			// Our op was pending before TryLock succeeded, so it is in
			// some batch this combine round applied, unless a peer
			// combiner took it first; either way done is closed.
			<-op.done
			return
		}

		c.backoff.Wait(attempt)
	}
}

// combine drains and applies pending batches until the queue is observed
// empty. Caller must hold the lock's writer section.
func (c *Combiner[T]) combine() {
	for {
		c.mu.Lock()
		n := c.pending.Length()
		if n == 0 {
			c.mu.Unlock()
			return
		}
		batch := make([]*pendingOp[T], n)
		for i := 0; i < n; i++ {
			batch[i] = c.pending.Remove().(*pendingOp[T])
		}
		c.mu.Unlock()

		c.apply(batch)
	}
}

func (c *Combiner[T]) apply(batch []*pendingOp[T]) {
	// Unblock waiters even if a mutator panics mid-batch.
	defer func() {
		for _, op := range batch {
			close(op.done)
		}
	}()

	mutators := make([]func(*T), len(batch))
	for i, op := range batch {
		mutators[i] = op.fn
	}
	c.lr.writeBatch(mutators)
}
