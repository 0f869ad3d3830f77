// Package common provides shared errors and logging helpers used across
// the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Aggregation errors. Noisy receipt text never produces these;
	// they indicate a programming or configuration mistake.
	ErrInvalidPeriod    = errors.New("period end precedes period start")
	ErrNegativeLimit    = errors.New("monthly limit cannot be negative")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownTimeframe = errors.New("unknown timeframe")

	// Configuration errors.
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
