// Package stripe adapts the Stripe API to the billing service: customers,
// one-time checkout sessions and signed webhooks.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v82"
	checksession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

const userIDMetadataKey = "user_id"

// Config holds the Stripe credentials and redirect targets.
type Config struct {
	SecretKey     string
	WebhookSecret string
	PriceID       string
	SuccessURL    string
	CancelURL     string
}

// Client talks to Stripe.
type Client struct {
	cfg Config
}

// NewClient configures the Stripe SDK with cfg.SecretKey.
func NewClient(cfg Config) *Client {
	stripe.Key = cfg.SecretKey
	return &Client{cfg: cfg}
}

// CreateCustomer creates a Stripe customer and returns the customer ID.
func (c *Client) CreateCustomer(ctx context.Context, email string, userID uuid.UUID) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata(userIDMetadataKey, userID.String())

	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe customer: %w", err)
	}
	return cust.ID, nil
}

// CreateCheckoutSession creates a one-time payment checkout for the premium
// upgrade and returns its URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, customerID string, userID uuid.UUID) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Customer:          stripe.String(customerID),
		ClientReferenceID: stripe.String(userID.String()),
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(c.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.cfg.SuccessURL),
		CancelURL:  stripe.String(c.cfg.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata(userIDMetadataKey, userID.String())

	sess, err := checksession.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}

// ParseWebhook verifies the signature and extracts the payment event.
// A bad signature is a validation error.
func (c *Client) ParseWebhook(payload []byte, sigHeader string) (domain.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.cfg.WebhookSecret)
	if err != nil {
		return domain.PaymentEvent{}, domain.NewValidationError("signature", err.Error())
	}

	out := domain.PaymentEvent{ID: event.ID, Type: string(event.Type)}

	switch out.Type {
	case domain.PaymentEventCheckoutCompleted,
		domain.PaymentEventAsyncPaymentSucceeded,
		domain.PaymentEventCheckoutExpired:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return domain.PaymentEvent{}, fmt.Errorf("unmarshal checkout session: %w", err)
		}
		out.UserID = checkoutUserID(&sess)
		out.Paid = sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	}

	return out, nil
}

// checkoutUserID reads the user from the client reference, falling back to
// the metadata copy.
func checkoutUserID(sess *stripe.CheckoutSession) uuid.UUID {
	if id, err := uuid.Parse(sess.ClientReferenceID); err == nil {
		return id
	}
	if id, err := uuid.Parse(sess.Metadata[userIDMetadataKey]); err == nil {
		return id
	}
	return uuid.Nil
}
