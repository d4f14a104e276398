package booking

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentProvider abstracts the card payment gateway.
type PaymentProvider interface {
	// CreateIntent opens a payment for the amount (VND, whole đồng) and
	// returns the intent ID and the client secret for the frontend.
	CreateIntent(amount int64, bookingID string) (id, clientSecret string, err error)
	// IntentStatus reports the current status of a payment intent.
	IntentStatus(id string) (string, error)
}

// StripeProvider charges through Stripe. stripe.Key must be set at startup.
type StripeProvider struct{}

func (StripeProvider) CreateIntent(amount int64, bookingID string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyVND)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", bookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ID, intent.ClientSecret, nil
}

func (StripeProvider) IntentStatus(id string) (string, error) {
	intent, err := paymentintent.Get(id, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch payment intent: %w", err)
	}
	return string(intent.Status), nil
}
