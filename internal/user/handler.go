// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/proper-parts/server/internal/core"
	"github.com/proper-parts/server/internal/middleware"
)

// TokenIssuer mints the bearer token returned on login.
type TokenIssuer interface {
	CreateLoginToken(email string) (string, error)
}

type Handler struct {
	repo   Repository
	tokens TokenIssuer
}

func NewHandler(repo Repository, tokens TokenIssuer) *Handler {
	return &Handler{
		repo:   repo,
		tokens: tokens,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, guard *middleware.Guard) {
	r.With(guard.Require(middleware.AccessPublic)).Get("/admin/{email}", h.CheckAdmin)
	r.With(guard.Require(middleware.AccessPublic)).Put("/user/{email}", h.Login)
	r.With(guard.Require(middleware.AccessUser)).Get("/user", h.List)
	r.With(guard.Require(middleware.AccessAdmin)).Put("/user/admin/{email}", h.Promote)
}

// CheckAdmin reports whether the given email belongs to an admin.
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	u, err := h.repo.FindByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, AdminCheckResponse{Admin: u.IsAdmin()})
}

// Login upserts the user document keyed by the email path parameter and
// returns the upsert acknowledgment together with a freshly signed token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	// A JSON null body decodes to a nil map; treat it as an empty upsert.
	if fields == nil {
		fields = bson.M{}
	}

	if role, ok := fields["role"].(string); ok {
		if role != RoleUser && role != RoleAdmin {
			core.BadRequest(w, "role must be user or admin")
			return
		}
	}

	ack, err := h.repo.Upsert(r.Context(), email, fields)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	token, err := h.tokens.CreateLoginToken(email)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, LoginResponse{Result: ack, Token: token})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.ListAll(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, users)
}

func (h *Handler) Promote(w http.ResponseWriter, r *http.Request) {
	ack, err := h.repo.PromoteToAdmin(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ack)
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type LoginResponse struct {
	Result *core.UpdateAck `json:"result"`
	Token  string          `json:"token"`
}
