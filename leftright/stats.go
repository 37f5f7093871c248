// File: leftright/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Activity counters. Per-field atomics rather than a guarded map: the read
// path is wait-free and may not take locks. All methods are nil-safe so the
// hot paths can call them unconditionally.

package leftright

import (
	"sync/atomic"

	"github.com/momentics/leftright/api"
)

type lockStats struct {
	reads         atomic.Int64
	writes        atomic.Int64
	flips         atomic.Int64
	readerRetries atomic.Int64
	drainPolls    atomic.Int64
}

func (s *lockStats) addReads(n int64) {
	if s != nil {
		s.reads.Add(n)
	}
}

func (s *lockStats) addWrites(n int64) {
	if s != nil {
		s.writes.Add(n)
	}
}

func (s *lockStats) addFlips(n int64) {
	if s != nil {
		s.flips.Add(n)
	}
}

func (s *lockStats) addReaderRetries(n int64) {
	if s != nil {
		s.readerRetries.Add(n)
	}
}

func (s *lockStats) addDrainPolls(n int64) {
	if s != nil {
		s.drainPolls.Add(n)
	}
}

func (s *lockStats) snapshot() api.Stats {
	if s == nil {
		return api.Stats{}
	}
	return api.Stats{
		Reads:         s.reads.Load(),
		Writes:        s.writes.Load(),
		Flips:         s.flips.Load(),
		ReaderRetries: s.readerRetries.Load(),
		DrainPolls:    s.drainPolls.Load(),
	}
}
