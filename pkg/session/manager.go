package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"
)

// Manager handles the session lifecycle: creation, lookup, deletion
// and expiry computation. It owns no state beyond the injected Store.
type Manager struct {
	store  Store
	config Config
}

// NewManager creates a session manager backed by the given store.
func NewManager(store Store, cfg Config) *Manager {
	return &Manager{store: store, config: cfg}
}

// Config returns the manager's configuration.
func (m *Manager) Config() Config {
	return m.config
}

// Create generates a fresh unguessable session id, stores a session
// for username expiring after ttl and returns the id. Token collisions
// are cryptographically negligible, so the returned id never shadows a
// different live session.
func (m *Manager) Create(username string, ttl time.Duration) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", err
	}

	m.store.Put(id, NewSession(id, username, ttl))
	return id, nil
}

// Get returns the session for id, or false if absent. Expiry is not
// evaluated; use Session.IsExpired or the Guard.
func (m *Manager) Get(id string) (*Session, bool) {
	return m.store.Get(id)
}

// Delete removes the session for id if present.
func (m *Manager) Delete(id string) {
	m.store.Remove(id)
}

// generateID creates a cryptographically secure session token.
func generateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
