package services

import "errors"

var (
	ErrNotFound     = errors.New("player not found")
	ErrUnauthorized = errors.New("invalid delete secret")
)

// ValidationError marks caller input the store refuses to act on. The message
// is safe to surface verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}
