// Package common defines shared constants and sentinel errors used across
// the motorpool server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Token errors.
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
	ErrSigningKeyMissing = errors.New("signing key is not configured")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrMissingAuthHeader = errors.New("authorization header required")
	ErrUnknownRole       = errors.New("unknown role")
)
