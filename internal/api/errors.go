// Package api is the single component through which all remote resource
// operations are issued. It speaks the prayer-request service's REST
// contract and maps every failure into the error taxonomy below; callers
// match with errors.Is.
package api

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is raised client-side before any network dispatch
	// (missing required field, blank comment, unknown status), and also
	// covers a 400 from the server.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated means the token is missing, expired or invalid.
	// Session verification treats it as grounds for a forced logout.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the server rejected the caller's ownership or
	// admin claim for an otherwise valid operation.
	ErrForbidden = errors.New("not allowed")

	// ErrNotFound means the addressed resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConnectivity means no response was received at all.
	ErrConnectivity = errors.New("server unreachable")
)

// Error is a failure reported by the service. It wraps one of the sentinel
// errors above so callers can branch on the class while still having the
// server's human-readable message for display.
type Error struct {
	StatusCode int    // HTTP status, 0 for client-side failures
	Message    string // server "error" field, or a generic fallback
	kind       error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (status %d)", e.StatusCode)
}

func (e *Error) Unwrap() error { return e.kind }

// validationErr builds a local pre-flight validation failure.
func validationErr(msg string) error {
	return &Error{Message: msg, kind: ErrValidation}
}
