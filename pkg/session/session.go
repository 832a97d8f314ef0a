package session

import "time"

// Session is a server-side record binding an opaque token to an
// authenticated principal and an expiry. The ID doubles as the token
// value delivered in the cookie, so it must never appear in any other
// serialized form sent to the client.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSession creates a session for username expiring after ttl.
// A negative ttl produces an already-expired session, which is useful
// in tests and harmless otherwise: the guard removes it on first read.
func NewSession(id, username string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Username:  username,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// IsExpired reports whether the session's expiry has been reached.
// The boundary counts as expired.
func (s *Session) IsExpired() bool {
	return s != nil && !time.Now().Before(s.ExpiresAt)
}
