package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// UploadPhoto stores a new profile photo and replaces the previous one.
func (s *Service) UploadPhoto(ctx context.Context, input UploadPhotoInput) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if s.photos == nil {
		return nil, domain.ErrUnavailable
	}

	if err := input.Validate(s.maxPhotoBytes); err != nil {
		return nil, err
	}

	current, err := s.profiles.GetByID(ctx, userID, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	key := PhotoKey(userID, current.ID, time.Now(), photoExtensions[input.ContentType])
	url, err := s.photos.Put(ctx, key, input.ContentType, input.Size, input.Body)
	if err != nil {
		s.log.ErrorContext(ctx, "photo upload failed",
			slog.String("profile_id", current.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	p, err := s.profiles.SetPhoto(ctx, userID, current.ID, &url, &key)
	if err != nil {
		s.deletePhotoObject(ctx, &key)
		return nil, fmt.Errorf("set photo: %w", err)
	}

	s.deletePhotoObject(ctx, current.PhotoKey)

	s.log.InfoContext(ctx, "profile photo updated",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", p.ID.String()),
		slog.Int64("size", input.Size),
	)
	return p, nil
}

// RemovePhoto detaches and deletes the profile photo.
func (s *Service) RemovePhoto(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.profiles.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if current.PhotoKey == nil && current.PhotoURL == nil {
		return current, nil
	}

	p, err := s.profiles.SetPhoto(ctx, userID, id, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("clear photo: %w", err)
	}

	s.deletePhotoObject(ctx, current.PhotoKey)
	return p, nil
}

// PhotoKey returns the object key for a profile photo uploaded at t.
func PhotoKey(userID, profileID uuid.UUID, t time.Time, ext string) string {
	return fmt.Sprintf("users/%s/profiles/%s/%d.%s", userID, profileID, t.UnixMilli(), ext)
}

// deletePhotoObject removes an object that is no longer referenced. Failures
// only leave an orphan behind and are logged.
func (s *Service) deletePhotoObject(ctx context.Context, key *string) {
	if key == nil || s.photos == nil {
		return
	}
	if err := s.photos.Delete(ctx, *key); err != nil {
		s.log.WarnContext(ctx, "delete photo object failed",
			slog.String("key", *key),
			slog.String("error", err.Error()),
		)
	}
}
