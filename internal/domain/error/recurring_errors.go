// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// Recurring transaction domain errors.
var (
	// ErrRecurringNotFound is returned when a recurring transaction is not found.
	ErrRecurringNotFound = errors.New("recurring transaction not found")

	// ErrRecurringNameRequired is returned when a recurring transaction is created with an empty name.
	ErrRecurringNameRequired = errors.New("recurring transaction name is required")

	// ErrInvalidFrequency is returned when the recurrence frequency is invalid.
	ErrInvalidFrequency = errors.New("invalid recurrence frequency")

	// ErrRecurringInactive is returned when materializing an inactive template.
	ErrRecurringInactive = errors.New("recurring transaction is not active")
)

// RecurringErrorCode defines error codes for recurring transaction errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	ErrCodeRecurringNameRequired RecurringErrorCode = "REC-010001"
	ErrCodeInvalidFrequency      RecurringErrorCode = "REC-010002"
	ErrCodeRecurringNotFound     RecurringErrorCode = "REC-010003"
	ErrCodeRecurringInactive     RecurringErrorCode = "REC-010004"
)

// RecurringError represents a recurring transaction error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
