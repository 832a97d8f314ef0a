package session

import (
	"sync"
	"time"
)

// MemoryStore implements Store with a mutex-guarded map.
//
// Sessions live for the process lifetime only; a restart logs every
// user out. Expired entries are removed lazily when the guard reads
// them, so memory grows with abandoned sessions unless the optional
// sweeper is started.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ticker   *time.Ticker
	done     chan struct{}
	once     sync.Once
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}
}

// Put inserts or overwrites the session under its id.
func (m *MemoryStore) Put(id string, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *s
	m.sessions[id] = &cp
}

// Get returns the session for id, or false if absent. Expiry is not
// evaluated here; callers that care use Session.IsExpired.
func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	cp := *s
	return &cp, true
}

// Remove deletes the session if present.
func (m *MemoryStore) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// StartSweeper runs a periodic cleanup of expired sessions. Lazy
// removal on read already gives functional correctness; the sweeper
// only bounds memory held by abandoned sessions.
func (m *MemoryStore) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		return
	}
	m.ticker = time.NewTicker(interval)
	go m.sweepLoop()
}

// Close stops the sweeper goroutine. Safe for repeated calls.
func (m *MemoryStore) Close() error {
	m.once.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
	return nil
}

func (m *MemoryStore) sweepLoop() {
	for {
		select {
		case <-m.ticker.C:
			m.removeExpired()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryStore) removeExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, s := range m.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
}
