// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no account of the requested kind has the email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create an account with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for any login mismatch. It never reveals which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a bearer token is missing, unknown, expired or revoked.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenNotFound is returned by token stores when a token cannot be found by ID.
	ErrTokenNotFound = errors.New("token not found")

	// ErrUnknownKind is returned when the requested account kind is not supported.
	ErrUnknownKind = errors.New("unknown user kind")
)
