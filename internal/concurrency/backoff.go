// File: internal/concurrency/backoff.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Poll backoff used by the writer's quiescence drain: spin briefly, then
// yield the processor, then sleep. Keeps short waits cheap without burning
// a core under long-running readers.

package concurrency

import (
	"runtime"
	"time"

	"github.com/momentics/leftright/api"
)

// Ensure compile-time interface compliance.
var _ api.Backoff = (*SpinYield)(nil)

// Default phase boundaries for SpinYield.
const (
	DefaultSpinLimit  = 64
	DefaultYieldLimit = 1024
	DefaultSleep      = 50 * time.Microsecond
)

// SpinYield is a three-phase backoff: attempts below SpinLimit return
// immediately (the caller's poll loop is the spin), attempts below
// YieldLimit call runtime.Gosched, and later attempts sleep for Sleep.
type SpinYield struct {
	SpinLimit  int
	YieldLimit int
	Sleep      time.Duration
}

// NewSpinYield returns a SpinYield with the default phase boundaries.
func NewSpinYield() *SpinYield {
	return &SpinYield{
		SpinLimit:  DefaultSpinLimit,
		YieldLimit: DefaultYieldLimit,
		Sleep:      DefaultSleep,
	}
}

// Wait implements api.Backoff.
func (b *SpinYield) Wait(attempt int) {
	switch {
	case attempt < b.SpinLimit:
		// Pure spin; the caller re-polls immediately.
	case attempt < b.YieldLimit:
		runtime.Gosched()
	default:
		time.Sleep(b.Sleep)
	}
}
