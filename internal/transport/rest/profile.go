package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/profile"
)

const photoFormField = "photo"

type profileService interface {
	Create(ctx context.Context, input profile.CreateProfileInput) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, input profile.UpdateProfileInput) (*domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadPhoto(ctx context.Context, input profile.UploadPhotoInput) (*domain.Profile, error)
	RemovePhoto(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// ProfileHandler serves profile CRUD and photos.
type ProfileHandler struct {
	svc           profileService
	maxPhotoBytes int64
	log           *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, maxPhotoBytes int64, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, maxPhotoBytes: maxPhotoBytes, log: logger.With("handler", "profile")}
}

type createProfileRequest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
}

type updateProfileRequest struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
}

type profileListResponse struct {
	Profiles []profileResponse `json:"profiles"`
}

// List handles GET /v1/profiles.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := profileListResponse{Profiles: make([]profileResponse, 0, len(profiles))}
	for i := range profiles {
		resp.Profiles = append(resp.Profiles, toProfileResponse(&profiles[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /v1/profiles.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Create(r.Context(), profile.CreateProfileInput{
		Name:         req.Name,
		Relationship: domain.Relationship(req.Relationship),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(p))
}

// Get handles GET /v1/profiles/{profileID}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Update handles PATCH /v1/profiles/{profileID}.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := profile.UpdateProfileInput{ProfileID: id, Name: req.Name}
	if req.Relationship != nil {
		rel := domain.Relationship(*req.Relationship)
		input.Relationship = &rel
	}

	p, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Delete handles DELETE /v1/profiles/{profileID}.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadPhoto handles PUT /v1/profiles/{profileID}/photo. The image is sent
// either as a multipart form field named "photo" or as the raw request body
// with an image Content-Type.
func (h *ProfileHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	// Headroom for multipart framing; the service enforces the photo limit.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoBytes+1<<20)

	input, err := h.readPhoto(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "photo too large")
			return
		}
		handleError(h.log, w, r, err)
		return
	}
	input.ProfileID = id

	p, err := h.svc.UploadPhoto(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (h *ProfileHandler) readPhoto(r *http.Request) (profile.UploadPhotoInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "multipart/form-data" {
		f, hdr, err := r.FormFile(photoFormField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return profile.UploadPhotoInput{}, err
			}
			return profile.UploadPhotoInput{}, domain.NewValidationError(photoFormField, "required")
		}
		ct, _, _ := mime.ParseMediaType(hdr.Header.Get("Content-Type"))
		return profile.UploadPhotoInput{ContentType: ct, Size: hdr.Size, Body: f}, nil
	}

	if r.ContentLength >= 0 {
		return profile.UploadPhotoInput{ContentType: mediaType, Size: r.ContentLength, Body: r.Body}, nil
	}

	// Chunked bodies have no declared length; buffer up to the limit.
	data, err := io.ReadAll(io.LimitReader(r.Body, h.maxPhotoBytes+1))
	if err != nil {
		return profile.UploadPhotoInput{}, err
	}
	return profile.UploadPhotoInput{ContentType: mediaType, Size: int64(len(data)), Body: bytes.NewReader(data)}, nil
}

// RemovePhoto handles DELETE /v1/profiles/{profileID}/photo.
func (h *ProfileHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	p, err := h.svc.RemovePhoto(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
