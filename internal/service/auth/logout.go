package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/werdnakof/ask-parents-25-questions/internal/auth"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// Logout revokes the session of the current request.
// Returns ErrUnauthorized if no session is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	sessionID, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()))
	return nil
}

// ValidateToken validates an access token and the session it is bound to.
// Returns ErrUnauthorized if the token is invalid or expired, or its session
// has been signed out.
func (s *Service) ValidateToken(ctx context.Context, token string) (auth.Identity, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return auth.Identity{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, id.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return auth.Identity{}, domain.ErrUnauthorized
		}
		return auth.Identity{}, fmt.Errorf("auth.ValidateToken get session: %w", err)
	}

	if session.UserID != id.UserID || !session.IsActive(s.now()) {
		return auth.Identity{}, domain.ErrUnauthorized
	}

	return id, nil
}

// CleanupSessions removes expired and revoked sessions from the database.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupSessions(ctx context.Context) (int, error) {
	count, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up sessions", slog.Int("count", count))
	}

	return count, nil
}
