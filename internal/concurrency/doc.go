// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Low-level support primitives for the leftright lock: cache-line padding,
// poll backoff strategies, and platform-aware CPU counting for default
// reader-slot sizing. Cross-platform, build-tag-partitioned where needed.
package concurrency
