// Package gateway talks to the card payment processor.
package gateway

import (
	"context"

	"github.com/shopspring/decimal"

	"sportszone/internal/errors"
)

// IntentStatusSucceeded is the status of a payment intent whose charge went through.
const IntentStatusSucceeded = "succeeded"

// Intent is the processor-agnostic view of a payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
}

// Succeeded reports whether the intent has been paid.
func (i *Intent) Succeeded() bool {
	return i != nil && i.Status == IntentStatusSucceeded
}

// Gateway creates and inspects payment intents.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
	GetPaymentIntent(ctx context.Context, id string) (*Intent, error)
}

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a price to the smallest currency unit, truncating any
// fraction of a cent. Non-positive results are rejected.
func MinorUnits(price decimal.Decimal) (int64, error) {
	amount := price.Mul(hundred).IntPart()
	if amount <= 0 {
		return 0, errors.ErrInvalidAmount
	}
	return amount, nil
}
