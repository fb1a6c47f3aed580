package billing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// HandleWebhook verifies and applies a payment gateway notification. Each
// event ID is applied once; redeliveries are acknowledged without effect.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.gateway == nil {
		return domain.ErrUnavailable
	}

	ev, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		s.log.WarnContext(ctx, "webhook rejected", slog.String("error", err.Error()))
		return err
	}

	log := s.log.With(slog.String("event_id", ev.ID), slog.String("event_type", ev.Type))

	var upgraded *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		first, err := s.events.MarkProcessed(txCtx, ev.ID, ev.Type)
		if err != nil {
			return fmt.Errorf("mark processed: %w", err)
		}
		if !first {
			log.InfoContext(ctx, "webhook redelivered, skipping")
			return nil
		}

		if !grantsPremium(ev) {
			log.InfoContext(ctx, "webhook acknowledged",
				slog.Bool("paid", ev.Paid),
				slog.String("user_id", ev.UserID.String()))
			return nil
		}

		upgraded, err = s.users.SetPremium(txCtx, ev.UserID, true)
		if err != nil {
			return fmt.Errorf("set premium: %w", err)
		}
		return nil
	})
	if err != nil {
		log.ErrorContext(ctx, "webhook failed", slog.String("error", err.Error()))
		return fmt.Errorf("billing.HandleWebhook: %w", err)
	}

	if upgraded != nil {
		s.tiers.Publish(upgraded.ID, upgraded.Tier())
		log.InfoContext(ctx, "user upgraded to premium", slog.String("user_id", upgraded.ID.String()))
	}
	return nil
}

func grantsPremium(ev domain.PaymentEvent) bool {
	if ev.UserID == uuid.Nil || !ev.Paid {
		return false
	}
	return ev.Type == domain.PaymentEventCheckoutCompleted ||
		ev.Type == domain.PaymentEventAsyncPaymentSucceeded
}
