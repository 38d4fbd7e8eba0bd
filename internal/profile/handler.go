// AngelaMos | 2026
// handler.go

package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/proper-parts/server/internal/core"
	"github.com/proper-parts/server/internal/middleware"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r chi.Router, guard *middleware.Guard) {
	user := guard.Require(middleware.AccessUser)

	r.With(user).Put("/update/{email}", h.Update)
	r.With(user).Get("/updateInfo/{email}", h.Get)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	ack, err := h.repo.Upsert(r.Context(), chi.URLParam(r, "email"), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ack)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.FindByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, p)
}
