// File: internal/concurrency/cpus_other.go
//go:build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback schedulable-CPU counting for platforms without affinity queries.

package concurrency

import "runtime"

// NumSchedulableCPUs returns runtime.NumCPU on platforms where the affinity
// mask cannot be queried.
func NumSchedulableCPUs() int {
	return runtime.NumCPU()
}
