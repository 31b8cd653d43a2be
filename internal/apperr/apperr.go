// Package apperr defines the error-kind taxonomy shared across agent-hand's
// components, so callers can branch on failure class without string
// matching.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for propagation-policy decisions.
type Kind string

const (
	IO               Kind = "io"
	Parse            Kind = "parse"
	Mux              Kind = "mux"
	SessionNotFound  Kind = "session_not_found"
	Config           Kind = "config"
	Storage          Kind = "storage"
	InvalidInput     Kind = "invalid_input"
	CommandFailed    Kind = "command_failed"
	Profile          Kind = "profile"
	Other            Kind = "other"
)

// Error wraps an underlying cause with a Kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with the given kind, op label, and cause.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
