// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorDetail carries the machine-readable code and human-readable
// message for a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse creates an error envelope.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// DeleteResponse reports the outcome of a delete request.
type DeleteResponse struct {
	Success bool `json:"success"`
	Deleted bool `json:"deleted"`
}
