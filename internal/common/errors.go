// Package common defines shared constants and sentinel errors used across
// termlock components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Validation errors.
	ErrorInvalidRole    = errors.New("invalid role")
	ErrorPasswordMatch  = errors.New("passwords do not match")
	ErrorEmptyUsername  = errors.New("username must not be empty")
	ErrorActionDenied   = errors.New("action not permitted for role")
	ErrorLastAdmin      = errors.New("cannot remove the last admin account")
	ErrorSelfDelete     = errors.New("cannot delete the currently logged in user")
	ErrorOutsideSandbox = errors.New("path escapes the sandbox directory")
)
