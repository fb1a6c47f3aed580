// Package dataloader provides per-request DataLoaders that batch the
// per-profile reads of a GraphQL query into single SQL calls. Loaders call
// repositories directly, bypassing the service layer; ownership is enforced
// in SQL by the user_id join in every batch query.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/selection"
	"github.com/werdnakof/ask-parents-25-questions/internal/catalog"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type answerRepo interface {
	ListByProfileIDs(ctx context.Context, userID uuid.UUID, profileIDs []uuid.UUID) ([]domain.Answer, error)
}

type selectionRepo interface {
	ListSelectedByProfileIDs(ctx context.Context, userID uuid.UUID, profileIDs []uuid.UUID) ([]selection.SelectedWithProfileID, error)
	ListCustomByProfileIDs(ctx context.Context, userID uuid.UUID, profileIDs []uuid.UUID) ([]selection.CustomWithProfileID, error)
}

type catalogSource interface {
	For(locale string) *catalog.Catalog
}

// Repos holds everything the loaders read from.
type Repos struct {
	Answer    answerRepo
	Selection selectionRepo
	Catalogs  catalogSource
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders is created per request via NewLoaders.
type Loaders struct {
	AnswersByProfileID   *dataloader.Loader[uuid.UUID, []domain.Answer]
	QuestionsByProfileID *dataloader.Loader[uuid.UUID, []domain.ComposedQuestion]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		AnswersByProfileID:   newLoader(newAnswersBatchFn(repos.Answer)),
		QuestionsByProfileID: newLoader(newQuestionsBatchFn(repos.Selection, repos.Catalogs)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
