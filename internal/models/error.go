package models

// ErrorResponse is the single-message error body used for not-found
// and server-error outcomes
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the multi-message error body used for
// validation failures
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a single-message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a validation error body from one
// or more messages
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: messages}
}
