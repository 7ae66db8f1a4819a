package billing

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentGateway captures card payments with an external processor and
// returns the processor's reference for the charge.
type PaymentGateway interface {
	Capture(ctx context.Context, amount float64, description string) (string, error)
}

// StripeGateway captures payments through Stripe payment intents.
type StripeGateway struct {
	Currency string
}

func (g *StripeGateway) Capture(ctx context.Context, amount float64, description string) (string, error) {
	currency := g.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(amount * 100))),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		Confirm:     stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ID, nil
}
