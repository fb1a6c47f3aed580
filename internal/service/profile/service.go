// Package profile manages the parent profiles a user records stories for.
package profile

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

type profileRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Profile, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, userID, id uuid.UUID, name *string, rel *domain.Relationship) (*domain.Profile, error)
	SetPhoto(ctx context.Context, userID, id uuid.UUID, url, key *string) (*domain.Profile, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// photoStore keeps profile photos. A nil store disables uploads.
type photoStore interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// Service provides profile operations.
type Service struct {
	log           *slog.Logger
	profiles      profileRepo
	photos        photoStore
	maxPhotoBytes int64
}

// NewService creates a new profile service. photos may be nil when no object
// store is configured.
func NewService(log *slog.Logger, profiles profileRepo, photos photoStore, maxPhotoBytes int64) *Service {
	return &Service{
		log:           log.With("service", "profile"),
		profiles:      profiles,
		photos:        photos,
		maxPhotoBytes: maxPhotoBytes,
	}
}
