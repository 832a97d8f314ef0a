package session

import "context"

type sessionContextKey struct{}

// WithAuthenticated adds an authenticated session to the context
func WithAuthenticated(ctx context.Context, auth *Authenticated) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, auth)
}

// FromContext retrieves the authenticated session from the context
func FromContext(ctx context.Context) (*Authenticated, bool) {
	auth, ok := ctx.Value(sessionContextKey{}).(*Authenticated)
	return auth, ok
}

// UsernameFromContext retrieves the session owner's username from the context
func UsernameFromContext(ctx context.Context) (string, bool) {
	auth, ok := FromContext(ctx)
	if !ok {
		return "", false
	}
	return auth.Session.Username, true
}
