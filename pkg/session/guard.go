package session

import "net/http"

// Authenticated pairs a validated session with the id it was looked up
// under. Callers need the id to delete or rotate the session later.
type Authenticated struct {
	ID      string
	Session *Session
}

// Guard decides whether an inbound request carries a valid session and
// implements sliding expiration via token rotation.
type Guard struct {
	manager *Manager
}

// NewGuard creates a guard over the given session manager.
func NewGuard(manager *Manager) *Guard {
	return &Guard{manager: manager}
}

// Authenticate inspects the request's cookies and returns the session
// they identify. It returns false when the request carries no session
// cookie, the id is unknown, or the session has expired. An expired
// session is removed from the store on the spot; there is no
// background sweep.
func (g *Guard) Authenticate(r *http.Request) (*Authenticated, bool) {
	id, ok := TokenFromRequest(r)
	if !ok {
		return nil, false
	}

	s, ok := g.manager.Get(id)
	if !ok {
		return nil, false
	}

	if s.IsExpired() {
		g.manager.Delete(id)
		return nil, false
	}

	return &Authenticated{ID: id, Session: s}, true
}

// Refresh rotates the session: a brand-new session is created for the
// same username with the short renewal TTL, the old id is deleted and
// the session cookie is re-issued with the new id and expiry. The user
// id cookie is left untouched.
//
// Rotation rather than in-place extension is deliberate: it limits the
// lifetime of any single token value and invalidates stale copies of
// the old cookie.
func (g *Guard) Refresh(w http.ResponseWriter, auth *Authenticated) (string, error) {
	newID, err := g.manager.Create(auth.Session.Username, g.manager.Config().RenewTTL)
	if err != nil {
		return "", err
	}

	g.manager.Delete(auth.ID)

	s, ok := g.manager.Get(newID)
	if !ok {
		return "", ErrSessionNotFound
	}
	WriteSessionCookie(w, newID, s.ExpiresAt)

	return newID, nil
}
