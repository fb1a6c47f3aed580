package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, displayName, preferredLocale *string) (*domain.User, error)
}

// Service implements account operations of the signed-in user.
type Service struct {
	log     *slog.Logger
	users   userRepo
	locales []string
}

// NewService creates a new user service instance. locales lists the catalog
// locales a user may prefer.
func NewService(logger *slog.Logger, users userRepo, locales []string) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		locales: locales,
	}
}
