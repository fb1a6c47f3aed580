package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// Create adds a profile for the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateProfileInput) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p, err := s.profiles.Create(ctx, &domain.Profile{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         strings.TrimSpace(input.Name),
		Relationship: input.Relationship,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile created",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", p.ID.String()),
	)
	return p, nil
}

// List returns the authenticated user's profiles.
func (s *Service) List(ctx context.Context) ([]domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profiles, err := s.profiles.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// Get returns one of the authenticated user's profiles.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// Update renames a profile or changes its relationship.
func (s *Service) Update(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var name *string
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		name = &trimmed
	}

	p, err := s.profiles.Update(ctx, userID, input.ProfileID, name, input.Relationship)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", p.ID.String()),
	)
	return p, nil
}

// Delete removes a profile with its questions, answers and photo.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	if err := s.profiles.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	s.deletePhotoObject(ctx, p.PhotoKey)

	s.log.InfoContext(ctx, "profile deleted",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", id.String()),
	)
	return nil
}
