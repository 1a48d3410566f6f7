// Package common defines shared constants and sentinel errors used across
// the record store, the gateways and the terminal front-end. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound         = errors.New("not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidReference   = errors.New("referenced record does not exist")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")

	// File storage errors.
	ErrFileExists = errors.New("file already exists in storage")

	// Session errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
