package errors

import (
	stderr "errors"
	"fmt"
)

// TransportError indicates that a request to a language server failed or was answered with a protocol error.
type TransportError struct {
	Session string
	Method  string
	Err     error
}

// Error is an implementation of the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Session, e.Method, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplyError indicates that running a code action or command failed.
type ApplyError struct {
	Session string
	Title   string
	Err     error
}

// Error is an implementation of the error interface.
func (e *ApplyError) Error() string {
	return fmt.Sprintf("running %q on %s: %v", e.Title, e.Session, e.Err)
}

// Unwrap returns the underlying error.
func (e *ApplyError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether a TransportError is part of the error chain.
func IsTransport(e error) bool {
	var te *TransportError
	return stderr.As(e, &te)
}

// IsApply reports whether an ApplyError is part of the error chain.
func IsApply(e error) bool {
	var ae *ApplyError
	return stderr.As(e, &ae)
}
