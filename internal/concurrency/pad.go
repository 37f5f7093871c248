// File: internal/concurrency/pad.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cache-line padding to prevent false sharing between adjacent hot fields.

package concurrency

// CacheLineSize is assumed to be 64 bytes on all supported targets.
const CacheLineSize = 64

// CacheLinePad occupies one cache line. Embed it between fields that are
// written by different goroutines.
type CacheLinePad [CacheLineSize]byte
