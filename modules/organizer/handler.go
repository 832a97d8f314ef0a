package organizer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gamedock/gamedock/core"
	"github.com/gamedock/gamedock/pkg/logger"
	"github.com/gamedock/gamedock/pkg/session"
	"github.com/gamedock/gamedock/pkg/validator"
)

// Handler serves the uniform CRUD endpoints for one collection.
type Handler struct {
	name string
	repo Repository
	log  *slog.Logger
}

// NewHandler creates a CRUD handler for the named collection.
func NewHandler(name string, repo Repository, log *slog.Logger) *Handler {
	return &Handler{name: name, repo: repo, log: log}
}

// Handle returns the CRUD router for the collection.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)

	return r
}

type documentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (req documentRequest) validate() error {
	if err := validator.Apply(
		validator.RequiredString("name", req.Name),
		validator.MaxLen("name", req.Name, 200),
		validator.MaxLen("description", req.Description, 5000),
	); err != nil {
		return errors.Join(core.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}
	if err := req.validate(); err != nil {
		core.JSONError(w, err)
		return
	}

	owner, _ := session.UsernameFromContext(r.Context())
	doc := &Document{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Owner:       owner,
	}

	if err := h.repo.Create(r.Context(), doc); err != nil {
		h.log.Error("create failed", slog.String("collection", h.name), logger.Error(err))
		core.JSONError(w, err)
		return
	}

	core.JSON(w, http.StatusOK, doc)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	docs, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error("list failed", slog.String("collection", h.name), logger.Error(err))
		core.JSONError(w, err)
		return
	}
	if docs == nil {
		docs = []Document{}
	}
	core.JSON(w, http.StatusOK, docs)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, mapNotFound(err))
		return
	}
	core.JSON(w, http.StatusOK, doc)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}
	if err := req.validate(); err != nil {
		core.JSONError(w, err)
		return
	}

	doc := &Document{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.repo.Update(r.Context(), doc); err != nil {
		core.JSONError(w, mapNotFound(err))
		return
	}
	core.JSON(w, http.StatusOK, doc)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		core.JSONError(w, mapNotFound(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func mapNotFound(err error) error {
	if errors.Is(err, ErrDocumentNotFound) {
		return errors.Join(core.ErrNotFound, err)
	}
	return err
}

// Register mounts a guarded CRUD subtree for every organizer
// collection on the given router. repos maps collection name to its
// repository; collections without an entry are skipped.
func Register(r chi.Router, repos map[string]Repository, guard *session.Guard, log *slog.Logger) {
	r.Group(func(g chi.Router) {
		g.Use(guard.Middleware)

		for _, name := range Collections {
			repo, ok := repos[name]
			if !ok {
				continue
			}
			g.Mount("/"+name, NewHandler(name, repo, log).Handle())
		}
	})
}

// Router returns a standalone router with all collections registered.
func Router(repos map[string]Repository, guard *session.Guard, log *slog.Logger) chi.Router {
	r := chi.NewRouter()
	Register(r, repos, guard, log)
	return r
}
