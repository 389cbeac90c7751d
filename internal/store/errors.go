package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/studyaid/internal/domain"
)

// Common store errors used by all ProjectStore implementations.
var (
	// ErrEmptyTitleOrMaterial is returned by Create for blank input. It is
	// the domain error itself so either name matches with errors.Is.
	ErrEmptyTitleOrMaterial = domain.ErrEmptyTitleOrMaterial

	// ErrUnavailable means the store could not be reached.
	ErrUnavailable = errors.New("project store unavailable")

	// ErrRejected means the store answered with a failure status.
	ErrRejected = errors.New("project store rejected the request")

	// ErrInvalidResponse means the store's answer could not be decoded.
	ErrInvalidResponse = errors.New("invalid response from project store")

	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrProjectNotFound indicates that the requested project does not exist.
	ErrProjectNotFound = fmt.Errorf("%w: project", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRetryable reports whether the failed operation may succeed if repeated
// unchanged.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrRejected)
}

// StoreError is a store failure with operation context.
type StoreError struct {
	Operation  string // e.g. "list projects", "create project"
	StatusCode int    // set when the store answered
	Err        error  // one of the sentinels above, possibly wrapping the cause
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failed (status %d): %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError. The sentinel and the cause are joined
// so both stay matchable.
func NewStoreError(operation string, statusCode int, sentinel, cause error) *StoreError {
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return &StoreError{Operation: operation, StatusCode: statusCode, Err: err}
}
