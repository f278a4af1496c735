// Package paygate wraps the payment processor behind a small interface so
// handlers and tests are not tied to the Stripe client.
package paygate

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// ErrInvalidAmount is returned for a non-positive charge amount before any
// call to the processor is made.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// IntentCreator creates a payment intent and returns the client secret the
// frontend uses to confirm the charge.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMajor int64, email string) (string, error)
}

// Stripe is the production IntentCreator backed by the Stripe API.
type Stripe struct {
	api      *client.API
	currency string
}

// NewStripe builds a Stripe gateway with the given secret key. The currency
// is a three-letter ISO code such as "usd".
func NewStripe(secretKey, currency string) *Stripe {
	return &Stripe{
		api:      client.New(secretKey, nil),
		currency: currency,
	}
}

// CreateIntent creates a payment intent for amountMajor whole currency
// units. The processor expects minor units, so the amount is multiplied by
// 100 before submission. The customer email rides along as metadata so the
// charge can be traced back to the member it paid for.
func (s *Stripe) CreateIntent(ctx context.Context, amountMajor int64, email string) (string, error) {
	if amountMajor <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMajor * 100),
		Currency: stripe.String(s.currency),
	}
	params.Context = ctx
	params.AddMetadata("email", email)
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
