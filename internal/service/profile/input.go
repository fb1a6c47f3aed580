package profile

import (
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

const maxNameLength = 100

// CreateProfileInput holds the parameters for creating a profile.
type CreateProfileInput struct {
	Name         string
	Relationship domain.Relationship
}

// Validate checks all fields and collects all errors.
func (i CreateProfileInput) Validate() error {
	var errs []domain.FieldError
	errs = appendNameErrors(errs, i.Name)
	if !i.Relationship.IsValid() {
		errs = append(errs, domain.FieldError{Field: "relationship", Message: "must be mother, father or other"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds the parameters for updating a profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	ProfileID    uuid.UUID
	Name         *string
	Relationship *domain.Relationship
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError
	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	if i.Name == nil && i.Relationship == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = appendNameErrors(errs, *i.Name)
	}
	if i.Relationship != nil && !i.Relationship.IsValid() {
		errs = append(errs, domain.FieldError{Field: "relationship", Message: "must be mother, father or other"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadPhotoInput holds a photo to attach to a profile.
type UploadPhotoInput struct {
	ProfileID   uuid.UUID
	ContentType string
	Size        int64
	Body        io.Reader
}

// photoExtensions lists the accepted image types.
var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
	"image/heic": "heic",
}

// Validate checks all fields and collects all errors.
func (i UploadPhotoInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError
	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	if _, ok := photoExtensions[i.ContentType]; !ok {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "must be a jpeg, png, webp, gif or heic image"})
	}
	if i.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "photo", Message: "required"})
	} else if i.Size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "photo", Message: "too large"})
	}
	if i.Body == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len([]rune(name)) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}
