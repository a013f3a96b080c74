// Package common defines shared constants and sentinel errors used across
// the storage, service and transport layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors. They never leave the service layer.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// User policy outcomes.
	ErrUserNotFound       = errors.New("user does not exist")
	ErrUserRevoked        = errors.New("user is revoked")
	ErrAccessDenied       = errors.New("access is denied")
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrInvalidAge         = errors.New("invalid age")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
