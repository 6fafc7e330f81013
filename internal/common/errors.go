package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Validation errors.
	ErrorInvalidPage = errors.New("page must be >= 1")
	ErrorEmptyPatch  = errors.New("patch has no fields")
)
