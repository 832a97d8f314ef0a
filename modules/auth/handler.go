package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gamedock/gamedock/core"
	"github.com/gamedock/gamedock/pkg/logger"
	"github.com/gamedock/gamedock/pkg/session"
)

// Handler exposes the session and registration endpoints.
type Handler struct {
	verifier  *Verifier
	registrar *Registrar
	sessions  *session.Manager
	guard     *session.Guard
	log       *slog.Logger
}

// NewHandler wires the auth endpoints together.
func NewHandler(verifier *Verifier, registrar *Registrar, sessions *session.Manager, guard *session.Guard, log *slog.Logger) *Handler {
	return &Handler{
		verifier:  verifier,
		registrar: registrar,
		sessions:  sessions,
		guard:     guard,
		log:       log,
	}
}

// Routes registers the auth endpoints on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Get("/auth", h.authCheck)
	})
	r.Post("/users/register", h.register)
}

// Handle returns a standalone router with the auth endpoints registered.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	h.Routes(r)
	return r
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login verifies credentials and, on success, creates a session with
// the long login TTL and sets the session and user id cookies. Any
// failure short of a store outage answers a bare 401.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := core.DecodeJSON(r, &req); err != nil || req.Username == "" || req.Password == "" {
		h.log.Error("unsuccessful login: empty username or password")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	result, err := h.verifier.CheckCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		h.log.Error("credential check failed", logger.Error(err), logger.Component("auth"))
		w.WriteHeader(core.Status(core.ErrStoreUnavailable))
		return
	}
	if !result.Match {
		h.log.Error("unsuccessful login: invalid username / password",
			slog.String("username", req.Username))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id, err := h.sessions.Create(req.Username, h.sessions.Config().LoginTTL)
	if err != nil {
		h.log.Error("session creation failed", logger.Error(err), logger.Component("auth"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s, ok := h.sessions.Get(id)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	session.WriteSessionCookie(w, id, s.ExpiresAt)
	session.WriteUserCookie(w, result.UserID, s.ExpiresAt)

	h.log.Info("successful login", slog.String("username", req.Username))
	w.WriteHeader(http.StatusOK)
}

// logout deletes the session and erases both cookies. The response is
// 401 even on a successful logout; existing clients rely on it.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	auth, ok := h.guard.Authenticate(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	h.sessions.Delete(auth.ID)
	h.log.Info("logged out user", slog.String("username", auth.Session.Username))

	session.ClearCookies(w)
	w.WriteHeader(http.StatusUnauthorized)
}

// authCheck reports whether the request carries a currently-valid
// session. No renewal takes place.
func (h *Handler) authCheck(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.guard.Authenticate(r); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type registerResponse struct {
	Success bool `json:"success"`
}

// register creates a new credential record. Weak passwords and taken
// usernames both answer {success:false} with 401; only a store outage
// surfaces as 500.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSON(w, http.StatusUnauthorized, registerResponse{Success: false})
		return
	}

	_, err := h.registrar.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		h.log.Info("successfully registered user", slog.String("username", req.Username))
		core.JSON(w, http.StatusOK, registerResponse{Success: true})
	case errors.Is(err, ErrWeakPassword):
		h.log.Error("unsuccessful registration: weak or missing credentials")
		core.JSON(w, http.StatusUnauthorized, registerResponse{Success: false})
	case errors.Is(err, ErrUsernameTaken):
		h.log.Error("unsuccessful registration: username already exists",
			slog.String("username", req.Username))
		core.JSON(w, http.StatusUnauthorized, registerResponse{Success: false})
	default:
		h.log.Error("registration failed", logger.Error(err), logger.Component("auth"))
		core.JSON(w, http.StatusInternalServerError, registerResponse{Success: false})
	}
}
