// Package auth implements credential verification, user registration
// and the session HTTP endpoints (login, logout, auth check).
//
// The credential verifier never reveals, in response content or
// timing, whether a username exists: unknown users and wrong passwords
// produce the same negative result, and a dummy bcrypt comparison runs
// even when the lookup misses.
package auth
