// Package billing runs the one-time premium upgrade: checkout creation and
// payment gateway webhooks.
package billing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetPremium(ctx context.Context, id uuid.UUID, premium bool) (*domain.User, error)
	SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}

type eventRepo interface {
	MarkProcessed(ctx context.Context, id, eventType string) (bool, error)
}

// gateway is the payment provider. A nil gateway disables billing.
type gateway interface {
	CreateCustomer(ctx context.Context, email string, userID uuid.UUID) (string, error)
	CreateCheckoutSession(ctx context.Context, customerID string, userID uuid.UUID) (string, error)
	ParseWebhook(payload []byte, sigHeader string) (domain.PaymentEvent, error)
}

type tierPublisher interface {
	Publish(userID uuid.UUID, state domain.TierState)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements billing operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	events  eventRepo
	gateway gateway
	tiers   tierPublisher
	tx      txManager
}

// NewService creates a new billing service. gw may be nil when no payment
// provider is configured.
func NewService(log *slog.Logger, users userRepo, events eventRepo, gw gateway, tiers tierPublisher, tx txManager) *Service {
	return &Service{
		log:     log.With("service", "billing"),
		users:   users,
		events:  events,
		gateway: gw,
		tiers:   tiers,
		tx:      tx,
	}
}

// Enabled reports whether a payment provider is configured.
func (s *Service) Enabled() bool {
	return s.gateway != nil
}
