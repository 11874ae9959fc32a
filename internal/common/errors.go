// Package common defines sentinel errors and small helpers shared by the
// recipebox client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input / identity errors.
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateUser      = errors.New("user with this email already exists")
	ErrUnauthorized       = errors.New("unauthorized")

	// Catalog errors.
	ErrTransport = errors.New("catalog transport error")
	ErrNotFound  = errors.New("not found")
)
