package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
)

type questionService interface {
	Catalog(ctx context.Context) *question.CatalogView
	BrowseCatalog(ctx context.Context, profileID uuid.UUID) (*question.CatalogView, error)
	List(ctx context.Context, profileID uuid.UUID) (*question.ListResult, error)
	GetQuestion(ctx context.Context, profileID uuid.UUID, questionID string) (*question.Detail, error)
	AddCurated(ctx context.Context, input question.AddCuratedInput) (question.AddResult, error)
	AddCustom(ctx context.Context, input question.AddCustomInput) (question.AddResult, error)
	Remove(ctx context.Context, input question.RemoveQuestionInput) (bool, error)
}

// QuestionHandler serves the catalog and profile question lists.
type QuestionHandler struct {
	svc questionService
	log *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(svc questionService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{svc: svc, log: logger.With("handler", "question")}
}

type addCuratedRequest struct {
	QuestionID string `json:"questionId"`
}

type addCustomRequest struct {
	Text string `json:"text"`
}

type addResponse struct {
	Added      bool   `json:"added"`
	QuestionID string `json:"questionId,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type listItemResponse struct {
	questionResponse
	Answered bool `json:"answered"`
}

type listResponse struct {
	Profile   profileResponse    `json:"profile"`
	Questions []listItemResponse `json:"questions"`
	Progress  progressResponse   `json:"progress"`
	Quota     quotaResponse      `json:"quota"`
}

type detailResponse struct {
	Question questionResponse `json:"question"`
	Added    bool             `json:"added"`
	Number   int              `json:"number,omitempty"`
	Total    int              `json:"total"`
	PrevID   string           `json:"prevId,omitempty"`
	NextID   string           `json:"nextId,omitempty"`
	Answer   *answerResponse  `json:"answer"`
}

// Catalog handles GET /v1/catalog.
func (h *QuestionHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCatalogResponse(h.svc.Catalog(r.Context())))
}

// ProfileCatalog handles GET /v1/profiles/{profileID}/catalog.
func (h *QuestionHandler) ProfileCatalog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	view, err := h.svc.BrowseCatalog(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogResponse(view))
}

// List handles GET /v1/profiles/{profileID}/questions.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	res, err := h.svc.List(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse{
		Profile:   toProfileResponse(res.Profile),
		Questions: make([]listItemResponse, 0, len(res.Items)),
		Progress:  toProgressResponse(res.Progress),
		Quota:     toQuotaResponse(res.Quota),
	}
	for _, it := range res.Items {
		resp.Questions = append(resp.Questions, listItemResponse{
			questionResponse: toQuestionResponse(it.ComposedQuestion),
			Answered:         it.Answered,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/profiles/{profileID}/questions/{questionID}. A question
// the user's tier does not unlock redirects to the profile's list.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	d, err := h.svc.GetQuestion(r.Context(), id, r.PathValue("questionID"))
	if errors.Is(err, domain.ErrForbidden) {
		http.Redirect(w, r, "/v1/profiles/"+id.String()+"/questions", http.StatusSeeOther)
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detailResponse{
		Question: toQuestionResponse(d.Question),
		Added:    d.Added,
		Number:   d.Number,
		Total:    d.Total,
		PrevID:   d.PrevID,
		NextID:   d.NextID,
		Answer:   toAnswerResponse(d.Answer),
	})
}

// AddCurated handles POST /v1/profiles/{profileID}/questions/curated.
// Precondition failures answer 200 with added=false and a reason.
func (h *QuestionHandler) AddCurated(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}
	var req addCuratedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.AddCurated(r.Context(), question.AddCuratedInput{ProfileID: id, QuestionID: req.QuestionID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeAddResult(w, res)
}

// AddCustom handles POST /v1/profiles/{profileID}/questions/custom.
func (h *QuestionHandler) AddCustom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}
	var req addCustomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.AddCustom(r.Context(), question.AddCustomInput{ProfileID: id, Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeAddResult(w, res)
}

func writeAddResult(w http.ResponseWriter, res question.AddResult) {
	status := http.StatusOK
	if res.Added {
		status = http.StatusCreated
	}
	writeJSON(w, status, addResponse{
		Added:      res.Added,
		QuestionID: res.QuestionID,
		Reason:     string(res.Reason),
	})
}

// Remove handles DELETE /v1/profiles/{profileID}/questions/{questionID}.
func (h *QuestionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}
	questionID := r.PathValue("questionID")

	removed, err := h.svc.Remove(r.Context(), question.RemoveQuestionInput{
		ProfileID:  id,
		QuestionID: questionID,
		IsCustom:   domain.IsCustomQuestionID(questionID),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "question not in list")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
