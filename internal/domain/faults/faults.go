// Package faults holds the error categories shared by every subsystem.
// Specific errors are created with New and unwrap to their category, so callers
// can match either the precise error or the broad class.
package faults

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized = errors.New("not initialized")
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrStateConflict  = errors.New("state conflict")
	ErrPersistence    = errors.New("persistence failure")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// New returns an error with message msg that unwraps to kind.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Persistence wraps a store failure. The result matches both ErrPersistence and err.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

// Kind reports the category of err, or nil when err belongs to none.
func Kind(err error) error {
	for _, k := range []error{ErrNotInitialized, ErrNotFound, ErrInvalidInput, ErrStateConflict, ErrPersistence} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
