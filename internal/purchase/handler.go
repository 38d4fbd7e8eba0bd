// AngelaMos | 2026
// handler.go

package purchase

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/proper-parts/server/internal/core"
	"github.com/proper-parts/server/internal/middleware"
)

// PaymentRecorder appends a raw payment document to the payments
// collection. Implemented by the payment package.
type PaymentRecorder interface {
	Record(ctx context.Context, doc bson.M) (*core.InsertAck, error)
}

type Handler struct {
	repo      Repository
	payments  PaymentRecorder
	validator *validator.Validate
}

func NewHandler(repo Repository, payments PaymentRecorder) *Handler {
	return &Handler{
		repo:      repo,
		payments:  payments,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// The manageOrder routes require authentication only, not the admin role.
func (h *Handler) RegisterRoutes(r chi.Router, guard *middleware.Guard) {
	user := guard.Require(middleware.AccessUser)
	public := guard.Require(middleware.AccessPublic)

	r.With(user).Get("/purchase/{email}", h.ListByEmail)
	r.With(user).Post("/purchase", h.Create)

	r.With(public).Get("/myPurchase/{id}", h.Get)
	r.With(user).Delete("/myPurchase/{id}", h.Delete)
	r.With(user).Patch("/myPurchase/{id}", h.ConfirmPayment)

	r.With(user).Get("/manageOrder", h.ListAll)
	r.With(user).Patch("/manageOrder/{id}", h.Ship)
	r.With(user).Delete("/manageOrder/{id}", h.Delete)
}

func (h *Handler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.repo.ListByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, purchases)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.repo.ListAll(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, purchases)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p Purchase
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(p); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	ack, err := h.repo.Insert(r.Context(), &p)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ack)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, p)
}

// ConfirmPayment appends the raw payment document, then flips the purchase
// to paid/pending with the provider transaction id. The two writes are not
// atomic: a crash in between leaves a payment document with no purchase
// update, mirroring the store's single-document guarantees.
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	transactionID, _ := doc["transactionId"].(string)
	if transactionID == "" {
		core.BadRequest(w, "transactionId is required")
		return
	}

	if _, err := h.payments.Record(r.Context(), doc); err != nil {
		core.InternalServerError(w, err)
		return
	}

	ack, err := h.repo.MarkPaid(r.Context(), chi.URLParam(r, "id"), transactionID)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ack)
}

func (h *Handler) Ship(w http.ResponseWriter, r *http.Request) {
	ack, err := h.repo.Ship(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ack)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ack, err := h.repo.DeleteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ack)
}
