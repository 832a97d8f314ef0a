package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the given id
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrTokenGeneration indicates the random token source failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
