package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/selection"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Answers by ProfileID
// ---------------------------------------------------------------------------

func newAnswersBatchFn(repo answerRepo) dataloader.BatchFunc[uuid.UUID, []domain.Answer] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Answer] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[[]domain.Answer](len(keys), domain.ErrUnauthorized)
		}

		answers, err := repo.ListByProfileIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[[]domain.Answer](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Answer, len(keys))
		for _, a := range answers {
			grouped[a.ProfileID] = append(grouped[a.ProfileID], a)
		}

		return mapResults(keys, grouped, emptySlice[domain.Answer])
	}
}

// ---------------------------------------------------------------------------
// Composed question list by ProfileID
// ---------------------------------------------------------------------------

// newQuestionsBatchFn reads selections and custom questions of every key in
// two queries and composes each list in the request locale.
func newQuestionsBatchFn(repo selectionRepo, catalogs catalogSource) dataloader.BatchFunc[uuid.UUID, []domain.ComposedQuestion] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.ComposedQuestion] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[[]domain.ComposedQuestion](len(keys), domain.ErrUnauthorized)
		}

		var (
			selected []selection.SelectedWithProfileID
			custom   []selection.CustomWithProfileID
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			selected, err = repo.ListSelectedByProfileIDs(gctx, userID, keys)
			return err
		})
		g.Go(func() error {
			var err error
			custom, err = repo.ListCustomByProfileIDs(gctx, userID, keys)
			return err
		})
		if err := g.Wait(); err != nil {
			return errorResults[[]domain.ComposedQuestion](len(keys), err)
		}

		selByProfile := make(map[uuid.UUID][]domain.SelectedQuestion, len(keys))
		for _, s := range selected {
			selByProfile[s.ProfileID] = append(selByProfile[s.ProfileID], s.SelectedQuestion)
		}
		customByProfile := make(map[uuid.UUID][]domain.CustomQuestion, len(keys))
		for _, c := range custom {
			customByProfile[c.ProfileID] = append(customByProfile[c.ProfileID], c.CustomQuestion)
		}

		cat := catalogs.For(ctxutil.LocaleFromCtx(ctx))
		grouped := make(map[uuid.UUID][]domain.ComposedQuestion, len(keys))
		for _, key := range keys {
			grouped[key] = question.Compose(cat, selByProfile[key], customByProfile[key])
		}

		return mapResults(keys, grouped, emptySlice[domain.ComposedQuestion])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
