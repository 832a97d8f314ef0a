package session

import "net/http"

// Middleware guards protected routes. Requests without a valid session
// are rejected with 401; valid ones get their session rotated (sliding
// expiration) and made available via FromContext before the handler
// runs.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, ok := g.Authenticate(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if _, err := g.Refresh(w, auth); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		ctx := WithAuthenticated(r.Context(), auth)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
