package domain

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Authorization errors
var (
	ErrForbidden = errors.New("forbidden")
)

// Entity errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrRoleNotFound        = errors.New("role not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session has expired")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrTokenInvalid        = errors.New("invalid or expired token")
)

// ValidationError carries field-level detail back to the caller
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NewValidationError builds a ValidationError from field/message pairs
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsValidation reports whether err is a ValidationError and returns it
func IsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
