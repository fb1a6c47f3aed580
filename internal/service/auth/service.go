package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/auth"
	"github.com/werdnakof/ask-parents-25-questions/internal/config"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	GetActiveByHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	Rotate(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error
	Revoke(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID, sessionID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (auth.Identity, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log           *slog.Logger
	users         userRepo
	sessions      sessionRepo
	tx            txManager
	jwt           jwtManager
	cfg           config.AuthConfig
	defaultLocale string
	now           func() time.Time
}

// NewService creates a new auth service instance. defaultLocale is stored
// for users registering without a negotiated locale.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
	defaultLocale string,
) *Service {
	return &Service{
		log:           logger.With("service", "auth"),
		users:         users,
		sessions:      sessions,
		tx:            tx,
		jwt:           jwt,
		cfg:           cfg,
		defaultLocale: defaultLocale,
		now:           time.Now,
	}
}

// startSession creates a session for the user and returns the token pair
// bound to it.
func (s *Service) startSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	session, err := s.sessions.Create(ctx, user.ID, hashRefresh, s.now().Add(s.cfg.RefreshTokenTTL))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		SessionID:    session.ID,
		User:         user,
	}, nil
}
