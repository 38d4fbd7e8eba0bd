// AngelaMos | 2026
// bridge.go

package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/proper-parts/server/internal/config"
	"github.com/proper-parts/server/internal/core"
)

// IntentCreator fronts the external payment processor. It takes an amount
// in minor currency units and returns the client secret that authorizes one
// client-side confirmation.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeBridge is the production IntentCreator. Provider-side retry and
// idempotency behavior is Stripe's concern, not ours.
type StripeBridge struct {
	api *client.API
}

func NewStripeBridge(cfg config.PaymentConfig) *StripeBridge {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)

	return &StripeBridge{api: api}
}

func (b *StripeBridge) CreateIntent(
	ctx context.Context,
	amount int64,
	currency string,
) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := b.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %v: %w", err, core.ErrUpstream)
	}

	return intent.ClientSecret, nil
}
