package models

// ValidationError is a local precondition failure caught before any API call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error carrying a user-facing message
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
