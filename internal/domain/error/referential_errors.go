// Package error defines domain-specific errors for the ledger.
package error

import "fmt"

// ReferentialIntegrityError is returned when a delete is blocked by
// live references. Count carries the number of blocking rows so the
// caller can render a precise message.
type ReferentialIntegrityError struct {
	Entity string
	Count  int64
}

// Error implements the error interface.
func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s is referenced by %d transaction(s) and cannot be deleted", e.Entity, e.Count)
}

// NewReferentialIntegrityError creates a new ReferentialIntegrityError.
func NewReferentialIntegrityError(entity string, count int64) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{
		Entity: entity,
		Count:  count,
	}
}
