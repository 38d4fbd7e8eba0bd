// AngelaMos | 2026
// handler.go

package review

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
	r.With(guard.Require(middleware.AccessPublic)).Get("/reviews", h.List)
	r.With(guard.Require(middleware.AccessUser)).Post("/reviews", h.Create)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.repo.ListAll(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, reviews)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var rv Review
	if err := json.NewDecoder(r.Body).Decode(&rv); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(rv); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	ack, err := h.repo.Insert(r.Context(), &rv)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ack)
}
