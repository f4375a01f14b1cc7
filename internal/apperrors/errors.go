// Package apperrors defines the error values services return to handlers.
// Handlers translate them to HTTP status codes; anything not listed here is
// treated as an internal failure.
package apperrors

import "errors"

var (
	// ErrDuplicateUser is returned when a registration targets a username
	// that already exists (after lowercase normalization).
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so the login response cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated means the request carries no valid token.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized means the token is valid but does not own the
	// targeted resource.
	ErrUnauthorized = errors.New("not allowed to act on this resource")

	// ErrNotFound is returned when a user, photo or message does not exist.
	ErrNotFound = errors.New("resource not found")

	ErrAlreadyLiked = errors.New("you already liked this user")
	ErrSelfLike     = errors.New("cannot like yourself")

	ErrAlreadyMainPhoto = errors.New("this is already the main photo")
	ErrDeleteMainPhoto  = errors.New("cannot delete the main photo")
	ErrInvalidPageSize  = errors.New("page size must be a positive integer")
	ErrEmptyMessage     = errors.New("message content is required")
)
