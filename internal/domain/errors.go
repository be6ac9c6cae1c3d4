package domain

import "errors"

var (
	ErrNotAuthenticated   = errors.New("user not authenticated")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("record not found")
	ErrNotOwner           = errors.New("record belongs to another user")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError carries a human-readable reason naming the failing field
// or condition.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
