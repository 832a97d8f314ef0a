package session

import (
	"net/http"
	"time"
)

// Cookie names are part of the wire contract with existing clients and
// must not change.
const (
	// SessionCookie carries the opaque session token.
	SessionCookie = "sessionId"

	// UserCookie carries the verified identity's id. It is set
	// alongside the session cookie at login and never re-issued on
	// rotation.
	UserCookie = "userId"
)

// TokenFromRequest extracts the session token from the request's
// cookies. Returns false when the cookie is absent or empty.
func TokenFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// WriteSessionCookie sets the session cookie to id, expiring when the
// session does. httpOnly keeps the token out of reach of scripts.
func WriteSessionCookie(w http.ResponseWriter, id string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
	})
}

// WriteUserCookie sets the user id cookie with the same expiry and
// flags as the session cookie.
func WriteUserCookie(w http.ResponseWriter, userID string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     UserCookie,
		Value:    userID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
	})
}

// ClearCookies erases both auth cookies by forcing immediate expiry.
func ClearCookies(w http.ResponseWriter) {
	expired := time.Now().Add(-time.Hour)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  expired,
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     UserCookie,
		Value:    "",
		Path:     "/",
		Expires:  expired,
		HttpOnly: true,
	})
}
