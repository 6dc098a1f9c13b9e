// Package common defines shared constants and sentinel errors used across
// the snackdash storefront. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors surfaced before any engine mutation.
	ErrMissingField = errors.New("missing required field")

	// Account engine errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
