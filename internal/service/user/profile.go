package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// Me returns the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// Tier returns the authenticated user's current tier.
func (s *Service) Tier(ctx context.Context) (domain.TierState, error) {
	user, err := s.Me(ctx)
	if err != nil {
		return domain.TierState{}, err
	}
	return user.Tier(), nil
}

// UpdateMe changes the display name or preferred catalog locale.
func (s *Service) UpdateMe(ctx context.Context, input UpdateMeInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.locales); err != nil {
		return nil, err
	}

	var name *string
	if input.DisplayName != nil {
		trimmed := strings.TrimSpace(*input.DisplayName)
		name = &trimmed
	}

	user, err := s.users.Update(ctx, userID, name, input.PreferredLocale)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", userID.String()))

	return user, nil
}
