package payment

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/price"
	"github.com/stripe/stripe-go/v74/webhook"
)

var (
	ErrInvalidPayload   = errors.New("Invalid payload")
	ErrInvalidSignature = errors.New("Invalid signature")
)

type StripeClient struct {
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripeClient(secretKey, webhookSecret, successURL, cancelURL string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
	}
}

func (c *StripeClient) CreateCheckoutSession(userEmail string, priceID string, mode string, metadata map[string]string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		CustomerEmail: &userEmail,
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(mode),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}

	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	return session.New(params)
}

// Aynı product altında aynı amount/currency için mevcut price'ı arar.
// Bulunamazsa boş string döner.
func (c *StripeClient) FindPriceByAmount(productID string, amountCents int64, currency string) (string, error) {
	params := &stripe.PriceListParams{
		Product: stripe.String(productID),
		Active:  stripe.Bool(true),
	}
	params.Filters.AddFilter("limit", "", "100")

	it := price.List(params)
	for it.Next() {
		p := it.Price()
		if p.UnitAmount == amountCents && string(p.Currency) == currency {
			return p.ID, nil
		}
	}
	if err := it.Err(); err != nil {
		return "", err
	}

	return "", nil
}

func (c *StripeClient) CreatePrice(productID string, amountCents int64, currency string) (string, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(amountCents),
		Currency:   stripe.String(currency),
	}

	p, err := price.New(params)
	if err != nil {
		return "", err
	}

	return p.ID, nil
}

// Raw payload'ı imza header'ı ile doğrular, doğrulanmadan event'e güvenilmez
func (c *StripeClient) VerifyWebhookEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, c.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		if isSignatureError(err) {
			return stripe.Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return event, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}
