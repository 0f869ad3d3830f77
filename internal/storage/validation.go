package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quillback/scanledger/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidBudget  = errors.New("invalid budget")
	ErrInvalidReceipt = errors.New("invalid receipt")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateReceipt checks the fields the schema requires.
func validateReceipt(r model.Receipt) error {
	if strings.TrimSpace(r.StoreName) == "" {
		return fmt.Errorf("%w: empty store name", ErrInvalidReceipt)
	}
	if r.Total < 0 {
		return fmt.Errorf("%w: negative total %.2f", ErrInvalidReceipt, r.Total)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidReceipt, r.Category)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: zero date", ErrInvalidReceipt)
	}
	return nil
}

// validateBudget checks the fields the schema requires.
func validateBudget(b model.Budget) error {
	if !b.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidBudget, b.Category)
	}
	if b.MonthlyLimit < 0 {
		return fmt.Errorf("%w: negative limit %.2f", ErrInvalidBudget, b.MonthlyLimit)
	}
	if b.Month.IsZero() {
		return fmt.Errorf("%w: zero month", ErrInvalidBudget)
	}
	return nil
}
