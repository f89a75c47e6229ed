package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. Controllers translate them
// into HTTP responses in utils.SendServiceError.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("not allowed to perform this action")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrConflict         = errors.New("conflicting update")
)

// ValidationError reports malformed or oversized input. It carries the field
// name so clients can point at the offending value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
