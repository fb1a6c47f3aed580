package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/answer"
)

type answerService interface {
	ListAnswers(ctx context.Context, profileID uuid.UUID) ([]domain.Answer, error)
	GetAnswer(ctx context.Context, profileID uuid.UUID, questionID string) (*domain.Answer, error)
	SaveAnswer(ctx context.Context, input answer.SaveAnswerInput) (answer.SaveResult, error)
	Summary(ctx context.Context, profileID uuid.UUID) (*answer.Summary, error)
}

// AnswerHandler serves answers and the profile summary.
type AnswerHandler struct {
	svc answerService
	log *slog.Logger
}

// NewAnswerHandler creates an AnswerHandler.
func NewAnswerHandler(svc answerService, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{svc: svc, log: logger.With("handler", "answer")}
}

type saveAnswerRequest struct {
	Answer string `json:"answer"`
}

type saveAnswerResponse struct {
	Saved  bool            `json:"saved"`
	Answer *answerResponse `json:"answer"`
}

type answerListResponse struct {
	Answers []answerResponse `json:"answers"`
}

type summaryEntryResponse struct {
	Number   int              `json:"number"`
	Question questionResponse `json:"question"`
	Answer   answerResponse   `json:"answer"`
}

type summaryResponse struct {
	Profile  profileResponse        `json:"profile"`
	Entries  []summaryEntryResponse `json:"entries"`
	Progress progressResponse       `json:"progress"`
}

// List handles GET /v1/profiles/{profileID}/answers.
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	answers, err := h.svc.ListAnswers(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := answerListResponse{Answers: make([]answerResponse, 0, len(answers))}
	for i := range answers {
		resp.Answers = append(resp.Answers, *toAnswerResponse(&answers[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/profiles/{profileID}/answers/{questionID}.
func (h *AnswerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	a, err := h.svc.GetAnswer(r.Context(), id, r.PathValue("questionID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnswerResponse(a))
}

// Save handles PUT /v1/profiles/{profileID}/answers/{questionID}.
func (h *AnswerHandler) Save(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}
	var req saveAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.SaveAnswer(r.Context(), answer.SaveAnswerInput{
		ProfileID:  id,
		QuestionID: r.PathValue("questionID"),
		Text:       req.Answer,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saveAnswerResponse{Saved: res.Saved, Answer: toAnswerResponse(res.Answer)})
}

// Summary handles GET /v1/profiles/{profileID}/summary.
func (h *AnswerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "profileID")
	if !ok {
		return
	}

	sum, err := h.svc.Summary(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := summaryResponse{
		Profile:  toProfileResponse(sum.Profile),
		Entries:  make([]summaryEntryResponse, 0, len(sum.Entries)),
		Progress: toProgressResponse(sum.Progress),
	}
	for i := range sum.Entries {
		e := &sum.Entries[i]
		resp.Entries = append(resp.Entries, summaryEntryResponse{
			Number:   e.Number,
			Question: toQuestionResponse(e.Question),
			Answer:   *toAnswerResponse(&e.Answer),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
