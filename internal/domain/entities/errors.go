package entities

import (
	"errors"
	"fmt"
)

// Token and credential errors surface as 401 responses with distinct codes.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenExpired       = errors.New("token expired, please log in again")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError reports malformed or out-of-range client input. Details
// carries machine-readable context such as the offending field and constraint.
type ValidationError struct {
	Message string
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a validation error for a single field constraint.
func NewValidationError(message, field, constraint string) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: map[string]interface{}{"field": field, "constraint": constraint},
	}
}

// NotFoundError reports a missing resource or a broken ownership chain. The
// resource names the missing link (board, list, card, user).
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ForbiddenError reports an ownership mismatch. The message stays generic so
// responses do not confirm the existence of other users' resources.
type ForbiddenError struct{}

func (e *ForbiddenError) Error() string {
	return "access denied"
}

// UnauthorizedError reports a missing or malformed Authorization header.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// DatabaseError wraps an infrastructure failure. The wrapped error is logged
// but never serialized to clients.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
