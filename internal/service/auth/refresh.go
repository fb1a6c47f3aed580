package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/werdnakof/ask-parents-25-questions/internal/auth"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// Refresh rotates the session's refresh token and returns a new token pair
// for the same session. Unknown, revoked or expired tokens and deleted users
// yield ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetActiveByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Rotated-away tokens land here too.
			s.log.WarnContext(ctx, "refresh with unknown or inactive token")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get session: %w", err)
	}

	if !session.IsActive(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", session.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh generate refresh token: %w", err)
	}

	if err := s.sessions.Rotate(ctx, session.ID, hashRefresh, s.now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Revoked between lookup and rotation.
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh rotate session: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh generate access token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		SessionID:    session.ID,
		User:         user,
	}, nil
}
