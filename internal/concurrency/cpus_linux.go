// File: internal/concurrency/cpus_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Schedulable-CPU counting via the thread affinity mask. Containers and
// pinned processes often see fewer schedulable CPUs than runtime.NumCPU
// reports; sizing reader slots by the mask avoids wasted tracker lines.

package concurrency

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// NumSchedulableCPUs returns the number of CPUs the current process may run
// on, falling back to runtime.NumCPU when the affinity mask is unavailable.
func NumSchedulableCPUs() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	if n := set.Count(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}
