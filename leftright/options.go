// File: leftright/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for lock construction.

package leftright

import (
	"github.com/momentics/leftright/api"
	"github.com/momentics/leftright/internal/concurrency"
)

type config struct {
	backoff      api.Backoff
	statsEnabled bool
}

func defaultConfig() config {
	return config{backoff: concurrency.NewSpinYield()}
}

// Option customizes lock construction.
type Option func(*config)

// WithBackoff replaces the default spin/yield/sleep drain backoff. Tuning
// choice only; any Backoff that eventually yields keeps the writer live.
func WithBackoff(b api.Backoff) Option {
	return func(c *config) {
		if b != nil {
			c.backoff = b
		}
	}
}

// WithStatsEnabled turns on activity counters. The read path pays one
// uncontended atomic add per operation when enabled; nothing when disabled.
func WithStatsEnabled() Option {
	return func(c *config) {
		c.statsEnabled = true
	}
}
