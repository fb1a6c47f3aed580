package billing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// CheckoutResult points the client at the hosted payment page.
type CheckoutResult struct {
	URL string
}

// StartCheckout creates a checkout for the premium upgrade. Users who are
// already premium get ErrConflict.
func (s *Service) StartCheckout(ctx context.Context) (*CheckoutResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if s.gateway == nil {
		return nil, domain.ErrUnavailable
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.IsPremium {
		return nil, fmt.Errorf("already premium: %w", domain.ErrConflict)
	}

	customerID := ""
	if user.StripeCustomerID != nil {
		customerID = *user.StripeCustomerID
	} else {
		customerID, err = s.gateway.CreateCustomer(ctx, user.Email, user.ID)
		if err != nil {
			s.log.ErrorContext(ctx, "create customer failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("create customer: %w", err)
		}
		if err := s.users.SetStripeCustomerID(ctx, user.ID, customerID); err != nil {
			return nil, fmt.Errorf("store customer id: %w", err)
		}
	}

	url, err := s.gateway.CreateCheckoutSession(ctx, customerID, user.ID)
	if err != nil {
		s.log.ErrorContext(ctx, "create checkout failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("create checkout: %w", err)
	}

	s.log.InfoContext(ctx, "checkout started", slog.String("user_id", userID.String()))
	return &CheckoutResult{URL: url}, nil
}
