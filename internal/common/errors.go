// Package common provides shared utilities used across the application.
package common

import (
	"errors"
	"fmt"
)

// Application-wide sentinel errors.
var (
	// Storage errors.
	ErrNotFound        = errors.New("not found")
	ErrMalformedRecord = errors.New("malformed record")
	ErrNoBackups       = errors.New("no backups found")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError wraps an error with a message meant to be shown verbatim in
// the terminal.
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

// NewUserError creates a user-facing error.
func NewUserError(userMessage string, err error) error {
	return &UserError{UserMessage: userMessage, Err: err}
}
