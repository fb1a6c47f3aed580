// Package question manages a profile's question list: catalog selections,
// custom questions, quota enforcement and access checks.
package question

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/catalog"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

type profileRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Profile, error)
	GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Profile, error)
	AdjustQuestionCount(ctx context.Context, id uuid.UUID, delta int) error
}

type selectionRepo interface {
	ListSelected(ctx context.Context, profileID uuid.UUID) ([]domain.SelectedQuestion, error)
	AddSelected(ctx context.Context, profileID uuid.UUID, q domain.SelectedQuestion) error
	DeleteSelected(ctx context.Context, profileID uuid.UUID, questionID string) (bool, error)
	ListCustom(ctx context.Context, profileID uuid.UUID) ([]domain.CustomQuestion, error)
	AddCustom(ctx context.Context, profileID uuid.UUID, q domain.CustomQuestion) error
	DeleteCustom(ctx context.Context, profileID uuid.UUID, id string) (bool, error)
}

type answerRepo interface {
	Get(ctx context.Context, profileID uuid.UUID, questionID string) (*domain.Answer, error)
	ListAnsweredIDs(ctx context.Context, profileID uuid.UUID) ([]string, error)
	Delete(ctx context.Context, profileID uuid.UUID, questionID string) (bool, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type catalogSource interface {
	For(locale string) *catalog.Catalog
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides question list operations.
type Service struct {
	profiles     profileRepo
	selections   selectionRepo
	answers      answerRepo
	users        userRepo
	catalogs     catalogSource
	tx           txManager
	policy       domain.TierPolicy
	customMaxLen int
	log          *slog.Logger
}

// NewService creates a new question service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	selections selectionRepo,
	answers answerRepo,
	users userRepo,
	catalogs catalogSource,
	tx txManager,
	policy domain.TierPolicy,
	customMaxLen int,
) *Service {
	return &Service{
		profiles:     profiles,
		selections:   selections,
		answers:      answers,
		users:        users,
		catalogs:     catalogs,
		tx:           tx,
		policy:       policy,
		customMaxLen: customMaxLen,
		log:          log.With("service", "question"),
	}
}

// catalogFor returns the catalog in the request's negotiated locale.
func (s *Service) catalogFor(ctx context.Context) *catalog.Catalog {
	return s.catalogs.For(ctxutil.LocaleFromCtx(ctx))
}

// logFailure records unexpected errors. Domain errors are left to the caller.
func (s *Service) logFailure(ctx context.Context, op string, err error) {
	if domain.IsExpected(err) {
		return
	}
	s.log.ErrorContext(ctx, op+" failed", slog.String("error", err.Error()))
}
