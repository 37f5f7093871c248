// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types and error handling utilities for the leftright library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrInvalidCapacity reports a construction attempt with zero or negative
	// reader capacity. No reader could ever be tracked by such a lock.
	ErrInvalidCapacity = fmt.Errorf("reader capacity must be positive")

	// ErrNilFactory reports a construction attempt without an instance factory.
	ErrNilFactory = fmt.Errorf("instance factory must not be nil")

	// ErrReaderOutOfRange reports a reader identity outside [0, capacity).
	ErrReaderOutOfRange = fmt.Errorf("reader id outside configured capacity")

	// ErrCopiesDiverged reports that a mutator failed on its second
	// application, after the indicator flip, leaving the two instances
	// permanently out of agreement.
	ErrCopiesDiverged = fmt.Errorf("instances diverged: mutator failed on second application")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeReaderOutOfRange
	ErrCodeMutatorFailed
	ErrCodeDiverged
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
