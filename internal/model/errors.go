package model

import "errors"

// ErrNotFound is returned when a lookup by id matches nothing. Handlers map
// it to a 404 rather than a server fault.
var ErrNotFound = errors.New("record not found")

// ValidationError rejects a request before anything is persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
