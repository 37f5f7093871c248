// File: leftright/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package leftright implements the Left-Right concurrency technique
// (Ramalhete & Correia, "Left-Right: A Concurrency Control Technique with
// Wait-Free Population Oblivious Reads"):
// https://github.com/pramalhe/ConcurrencyFreaks/blob/master/papers/left-right-2014.pdf
//
// A LeftRight lock keeps two full instances of a protected structure.
// Readers always observe an instance that is guaranteed not to be under
// mutation and never block on the writer; the writer mutates the hidden
// instance, flips a version indicator, waits for in-flight readers to vacate
// the now-hidden instance, and applies the same mutation there too, so both
// instances converge after every completed write.
//
// Reads are wait-free with respect to readers and writers. Writes serialize
// against each other and trade throughput for reader non-blocking: the only
// waiting in the algorithm is the writer's quiescence drain.
//
// The memory cost is two instances plus one padded counter pair per reader
// slot. Reader slot capacity is fixed at construction; slot-to-goroutine
// assignment is the caller's convention (slots use additive counters, so
// accidental sharing stays correct and only couples drain waits).
package leftright
