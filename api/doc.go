// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for the leftright library: shared-state access interfaces,
// error taxonomy, backoff strategy contract, and telemetry DTOs.
//
// The api package carries no implementation. Concrete types live in the
// leftright package and in internal/concurrency; they assert conformance
// against these contracts at compile time.
package api
