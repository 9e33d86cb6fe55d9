package gateway

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"go.uber.org/zap"

	"sportszone/internal/errors"
)

type stripeGateway struct {
	log *zap.Logger
}

// NewStripe configures the Stripe SDK with apiKey and returns a Gateway backed by it.
func NewStripe(apiKey string, log *zap.Logger) Gateway {
	stripe.Key = apiKey
	if log == nil {
		log = zap.NewNop()
	}
	return &stripeGateway{log: log}
}

func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	if amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		g.log.Warn("create payment intent failed", zap.Int64("amount", amount), zap.String("currency", currency), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errors.ErrPaymentGateway, err)
	}

	g.log.Info("payment intent created", zap.String("intent_id", pi.ID), zap.Int64("amount", amount))
	return intentFrom(pi), nil
}

func (g *stripeGateway) GetPaymentIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(id, params)
	if err != nil {
		g.log.Warn("get payment intent failed", zap.String("intent_id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errors.ErrPaymentGateway, err)
	}
	return intentFrom(pi), nil
}

func intentFrom(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}
}
