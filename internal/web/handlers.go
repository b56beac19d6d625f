// Package web serves the comments resource over HTTP.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/recase-dev/recase/internal/comments"
)

// CommentStore is the persistence contract the HTTP layer consumes.
type CommentStore interface {
	List(ctx context.Context) ([]comments.Comment, error)
	Create(ctx context.Context, author, body string) (*comments.Comment, error)
	DeleteByID(ctx context.Context, id string) (*comments.Comment, error)
}

// Handler maps the comments resource onto HTTP routes
type Handler struct {
	store  CommentStore
	logger *zap.Logger
}

// NewHandler creates a handler for the given store. A nil logger disables
// request logging.
func NewHandler(store CommentStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// Routes builds the chi router for the comments resource
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.logRequests)

	r.Get("/comments", h.list)
	r.Post("/comments", h.create)
	r.Delete("/comments/{id}", h.deleteByID)

	return r
}

// createRequest is the POST /comments payload
type createRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list comments", zap.Error(err))
		renderError(w, http.StatusInternalServerError, "failed to load comments")
		return
	}

	renderJSON(w, http.StatusOK, all)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		renderError(w, http.StatusBadRequest, "body is required")
		return
	}

	created, err := h.store.Create(r.Context(), req.Author, req.Body)
	if err != nil {
		h.logger.Error("failed to create comment", zap.Error(err))
		renderError(w, http.StatusInternalServerError, "failed to create comment")
		return
	}

	renderJSON(w, http.StatusCreated, created)
}

func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.store.DeleteByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, comments.ErrNotFound) {
			renderError(w, http.StatusNotFound, "comment not found")
			return
		}
		h.logger.Error("failed to delete comment", zap.String("id", id), zap.Error(err))
		renderError(w, http.StatusInternalServerError, "failed to delete comment")
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"message": "comment deleted",
		"comment": deleted,
	})
}
