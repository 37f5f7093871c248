// File: leftright/indicator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Version indicator: a single atomic flag naming the instance readers may
// observe. Written only by the writer, read by everyone. Go's sync/atomic
// provides sequentially consistent ordering, which subsumes the
// acquire/release pairing the algorithm requires: a reader that observes
// index i after the flip also observes every mutation applied to
// instance[i] before the flip.

package leftright

import "sync/atomic"

// indicator holds the index (0 or 1) of the currently visible instance.
// Initial value 0: instance 0 is visible after construction.
type indicator struct {
	v atomic.Int32
}

// current returns the visible instance index.
func (ind *indicator) current() int {
	return int(ind.v.Load())
}

// flip publishes idx as the visible instance. Writer-only.
func (ind *indicator) flip(idx int) {
	ind.v.Store(int32(idx))
}
