// Package answer stores and reads the answers written for a profile's
// questions.
package answer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
)

type answerRepo interface {
	Get(ctx context.Context, profileID uuid.UUID, questionID string) (*domain.Answer, error)
	List(ctx context.Context, profileID uuid.UUID) ([]domain.Answer, error)
	Upsert(ctx context.Context, a *domain.Answer) (*domain.Answer, error)
}

type questionLister interface {
	ComposedList(ctx context.Context, profileID uuid.UUID) (*question.ComposedList, error)
	ComposedListForUpdate(ctx context.Context, profileID uuid.UUID) (*question.ComposedList, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides answer operations.
type Service struct {
	answers   answerRepo
	questions questionLister
	tx        txManager
	maxLen    int
	log       *slog.Logger
}

// NewService creates a new answer service. maxLen bounds an answer in runes.
func NewService(log *slog.Logger, answers answerRepo, questions questionLister, tx txManager, maxLen int) *Service {
	return &Service{
		answers:   answers,
		questions: questions,
		tx:        tx,
		maxLen:    maxLen,
		log:       log.With("service", "answer"),
	}
}
