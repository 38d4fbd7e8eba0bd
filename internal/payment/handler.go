// AngelaMos | 2026
// handler.go

package payment

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/proper-parts/server/internal/core"
	"github.com/proper-parts/server/internal/middleware"
)

type IntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type Handler struct {
	intents   IntentCreator
	currency  string
	validator *validator.Validate
}

func NewHandler(intents IntentCreator, currency string) *Handler {
	return &Handler{
		intents:   intents,
		currency:  currency,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, guard *middleware.Guard) {
	r.With(guard.Require(middleware.AccessUser)).Post("/create-payment-intent", h.CreateIntent)
}

func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req IntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	// Amounts are charged in the currency's minor unit.
	amount := int64(math.Round(req.Price * 100))

	secret, err := h.intents.CreateIntent(r.Context(), amount, h.currency)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, IntentResponse{ClientSecret: secret})
}
