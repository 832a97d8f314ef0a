package session

// Store is the registry of active sessions, keyed by session id.
// Implementations must be safe for concurrent use: the store is
// process-wide shared state touched by every request handler.
//
// Store operations are pure mapping operations. In particular Get does
// not evaluate expiry; staleness is detected by the Guard on read.
type Store interface {
	// Put inserts or overwrites the session under its id.
	Put(id string, s *Session)

	// Get returns the session for id, or false if absent.
	Get(id string) (*Session, bool)

	// Remove deletes the session if present. Idempotent.
	Remove(id string)
}
