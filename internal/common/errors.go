// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Catalog errors.
	ErrFetchFailed = errors.New("catalog fetch failed")

	// Selection errors.
	ErrNoCategory           = errors.New("no category selected")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrProductNotInCategory = errors.New("product not in selected category")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// FetchError wraps a catalog failure so callers can match ErrFetchFailed
// while keeping the underlying cause.
func FetchError(cause error) error {
	return fmt.Errorf("%w: %w", ErrFetchFailed, cause)
}
