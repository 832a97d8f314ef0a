package auth

import "errors"

var (
	// ErrUserNotFound indicates no user exists with the given username.
	// Storage implementations must return it as a distinct value rather
	// than folding "does not exist" into a generic lookup failure.
	ErrUserNotFound = errors.New("auth.user_not_found")

	// ErrUsernameTaken indicates a registration attempt with an existing username.
	ErrUsernameTaken = errors.New("auth.username_taken")

	// ErrWeakPassword indicates the password failed the strength check.
	ErrWeakPassword = errors.New("auth.weak_password")
)
