// Package error defines domain-specific errors for the ledger.
package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectNameRequired is returned when a project is created with an empty name.
	ErrProjectNameRequired = errors.New("project name is required")

	// ErrInvalidProjectType is returned when the project type is invalid.
	ErrInvalidProjectType = errors.New("invalid project type")

	// ErrInvalidProjectStatus is returned when the project status is invalid.
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

// ProjectErrorCode defines error codes for project errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectErrorCode string

const (
	ErrCodeProjectNameRequired  ProjectErrorCode = "PRJ-010001"
	ErrCodeInvalidProjectType   ProjectErrorCode = "PRJ-010002"
	ErrCodeInvalidProjectStatus ProjectErrorCode = "PRJ-010003"
	ErrCodeProjectNotFound      ProjectErrorCode = "PRJ-010004"
	ErrCodeProjectInUse         ProjectErrorCode = "PRJ-010005"
)

// ProjectError represents a project error with code and message.
type ProjectError struct {
	Code    ProjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError with the given code and message.
func NewProjectError(code ProjectErrorCode, message string, err error) *ProjectError {
	return &ProjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
