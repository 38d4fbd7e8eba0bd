// AngelaMos | 2026
// handler.go

package tool

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/proper-parts/server/internal/core"
	"github.com/proper-parts/server/internal/middleware"
)

type Handler struct {
	repo      Repository
	validator *validator.Validate
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo:      repo,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, guard *middleware.Guard) {
	r.With(guard.Require(middleware.AccessPublic)).Get("/tools", h.List)
	r.With(guard.Require(middleware.AccessAdmin)).Post("/tools", h.Create)
	r.With(guard.Require(middleware.AccessUser)).Get("/tools/{id}", h.Get)
	r.With(guard.Require(middleware.AccessUser)).Delete("/tools/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tools, err := h.repo.ListAll(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, tools)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var t Tool
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(t); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	ack, err := h.repo.Insert(r.Context(), &t)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ack)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, t)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ack, err := h.repo.DeleteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ack)
}
