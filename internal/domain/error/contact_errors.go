// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// Contact domain errors.
var (
	// ErrContactNotFound is returned when a contact is not found in the system.
	ErrContactNotFound = errors.New("contact not found")

	// ErrContactNameRequired is returned when a contact is created with an empty name.
	ErrContactNameRequired = errors.New("contact name is required")
)

// ContactErrorCode defines error codes for contact errors.
// Format: CON-XXYYYY where XX is category and YYYY is specific error.
type ContactErrorCode string

const (
	ErrCodeContactNameRequired ContactErrorCode = "CON-010001"
	ErrCodeContactNotFound     ContactErrorCode = "CON-010002"
	ErrCodeContactInUse        ContactErrorCode = "CON-010003"
)

// ContactError represents a contact error with code and message.
type ContactError struct {
	Code    ContactErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ContactError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ContactError) Unwrap() error {
	return e.Err
}

// NewContactError creates a new ContactError with the given code and message.
func NewContactError(code ContactErrorCode, message string, err error) *ContactError {
	return &ContactError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
