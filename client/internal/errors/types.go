// Package errors classifies failures of outbound backend calls.
//
// Every failure of the REST client is one of three causes: the request never
// produced a response (NetworkError), the backend answered with a non-2xx
// status (HTTPError), or the 2xx body was not JSON (DecodeError). Each cause
// also carries a retry category so the retry loop and the worker pool can
// decide whether another attempt is worthwhile.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may succeed on a later attempt.
	// Examples: 500 Internal Server Error, timeouts, refused connections.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail the same way every time.
	// Examples: 401 Unauthorized, 404 Not Found, malformed JSON.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// NetworkError reports a transport-level failure: DNS, connection refused,
// timeout, context cancellation or an open circuit breaker.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: network error: %v", e.Op, e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// Category reports NetworkErrors as recoverable.
func (e *NetworkError) Category() ErrorCategory { return Recoverable }

// HTTPError reports a response whose status was outside 2xx.
type HTTPError struct {
	Op     string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// Category maps the status to a retry category.
func (e *HTTPError) Category() ErrorCategory { return categoryForStatus(e.Status) }

// DecodeError reports a 2xx response whose body could not be parsed as JSON.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("%s: invalid JSON response: %v", e.Op, e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// Category reports DecodeErrors as irrecoverable; the same body comes back.
func (e *DecodeError) Category() ErrorCategory { return Irrecoverable }

// FinalError marks an error that must not be retried regardless of its
// cause, e.g. the failure of a non-idempotent create.
type FinalError struct{ Err error }

func (e *FinalError) Error() string { return e.Err.Error() }

func (e *FinalError) Unwrap() error { return e.Err }

// Category reports FinalErrors as irrecoverable.
func (e *FinalError) Category() ErrorCategory { return Irrecoverable }

// Final wraps err as a FinalError. A nil err stays nil.
func Final(err error) error {
	if err == nil {
		return nil
	}
	return &FinalError{Err: err}
}

type categorized interface{ Category() ErrorCategory }

// CategoryOf returns the retry category of err. Unclassified errors are
// treated as recoverable, matching the conservative default of the worker pool.
func CategoryOf(err error) ErrorCategory {
	var c categorized
	if stderrors.As(err, &c) {
		return c.Category()
	}
	return Recoverable
}

// IsIrrecoverable returns true if the error should not be retried.
func IsIrrecoverable(err error) bool {
	if err == nil {
		return false
	}
	return CategoryOf(err) == Irrecoverable
}

// IsNetwork reports whether err is (or wraps) a *NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return stderrors.As(err, &ne)
}

// IsDecode reports whether err is (or wraps) a *DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return stderrors.As(err, &de)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an HTTPError.
func StatusOf(err error) int {
	var he *HTTPError
	if stderrors.As(err, &he) {
		return he.Status
	}
	return 0
}
