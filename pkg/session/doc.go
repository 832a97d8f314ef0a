// Package session implements cookie-based server-side sessions with
// sliding expiration.
//
// A session binds an opaque, unguessable token to a username and an
// absolute expiry. Tokens are delivered to clients in an httpOnly
// cookie and act as bearer capabilities: possession implies
// authentication.
//
// The package is built from three collaborating pieces:
//
//   - Store: concurrency-safe registry of active sessions keyed by
//     token. The in-memory implementation is a mutex-guarded map with
//     no persistence; a process restart clears all sessions.
//   - Manager: creates, fetches and deletes sessions and computes
//     expiry. TTL is a parameter because two different TTLs are in
//     play: a long login TTL and a short renewal TTL issued on every
//     authenticated request.
//   - Guard: inspects inbound request cookies, rejects missing,
//     unknown or expired tokens (expired entries are removed on read,
//     there is no background sweep), and rotates the token on each
//     protected request. Rotation bounds the lifetime of any single
//     token value even under continuous use and invalidates stale
//     copies of the old cookie.
//
// Basic usage:
//
//	store := session.NewMemoryStore()
//	mgr := session.NewManager(store, session.DefaultConfig())
//	guard := session.NewGuard(mgr)
//
//	auth, ok := guard.Authenticate(r)
//	if !ok {
//	    w.WriteHeader(http.StatusUnauthorized)
//	    return
//	}
//	guard.Refresh(w, auth) // sliding expiration via rotation
package session
