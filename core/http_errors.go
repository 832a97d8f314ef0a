// Package core holds the shared HTTP error taxonomy and response
// helpers used by every feature module.
package core

import (
	"errors"
	"net/http"
)

// Error kinds. Handlers classify failures with these sentinels (or
// wrap them) and map them to a status code through Status, instead of
// branching on concrete error types in every controller.
var (
	// ErrUnauthorized covers missing, unknown and expired sessions as
	// well as bad login credentials. Deliberately carries no detail:
	// callers must not be able to tell which check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput indicates a malformed or failing-validation request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the addressed document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable indicates the backing store could not be
	// reached. Kept distinct from ErrUnauthorized so operational
	// failures are never reported as "no session".
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Status maps an error to its HTTP status code. Unrecognized errors
// are treated as internal failures.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
