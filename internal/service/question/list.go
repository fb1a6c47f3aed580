package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// ComposedList loads the profile's question list in the request locale.
// Selections, custom questions and answered IDs are read concurrently.
func (s *Service) ComposedList(ctx context.Context, profileID uuid.UUID) (*ComposedList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.GetByID(ctx, userID, profileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var (
		user     *domain.User
		selected []domain.SelectedQuestion
		custom   []domain.CustomQuestion
		answered []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if user, err = s.users.GetByID(gctx, userID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if selected, err = s.selections.ListSelected(gctx, profile.ID); err != nil {
			return fmt.Errorf("list selected: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if custom, err = s.selections.ListCustom(gctx, profile.ID); err != nil {
			return fmt.Errorf("list custom: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if answered, err = s.answers.ListAnsweredIDs(gctx, profile.ID); err != nil {
			return fmt.Errorf("list answered: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logFailure(ctx, "load question list", err)
		return nil, err
	}

	cat := s.catalogFor(ctx)
	return &ComposedList{
		Profile:   profile,
		User:      user,
		Catalog:   cat,
		Questions: Compose(cat, selected, custom),
		Answered:  AnsweredSet(answered),
	}, nil
}

// ComposedListForUpdate locks the profile row and loads its question list.
// It must run inside a transaction, so adds, removes and answer saves on one
// profile see the list one at a time. User and Answered are left empty.
func (s *Service) ComposedListForUpdate(ctx context.Context, profileID uuid.UUID) (*ComposedList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.GetForUpdate(ctx, userID, profileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	selected, custom, err := s.loadForUpdate(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	cat := s.catalogFor(ctx)
	return &ComposedList{
		Profile:   profile,
		Catalog:   cat,
		Questions: Compose(cat, selected, custom),
	}, nil
}

// List returns the profile's question list with answered flags, progress and
// the remaining quota.
func (s *Service) List(ctx context.Context, profileID uuid.UUID) (*ListResult, error) {
	cl, err := s.ComposedList(ctx, profileID)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(cl.Questions))
	for _, q := range cl.Questions {
		_, answered := cl.Answered[q.ID]
		items = append(items, ListItem{ComposedQuestion: q, Answered: answered})
	}

	return &ListResult{
		Profile:  cl.Profile,
		Items:    items,
		Progress: DeriveProgress(cl.Questions, cl.Answered),
		Quota:    s.quota(cl.User.IsPremium, len(cl.Questions)),
	}, nil
}

// GetQuestion returns one question of the profile with its neighbours and
// answer. Questions outside the user's entitlement yield ErrForbidden.
func (s *Service) GetQuestion(ctx context.Context, profileID uuid.UUID, questionID string) (*Detail, error) {
	cl, err := s.ComposedList(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if !CanAccessQuestion(questionID, cl.User.Tier(), cl.Catalog, cl.Questions) {
		return nil, domain.ErrForbidden
	}

	d := &Detail{Total: len(cl.Questions)}
	if idx := IndexOf(cl.Questions, questionID); idx >= 0 {
		d.Question = cl.Questions[idx]
		d.Added = true
		d.Number = idx + 1
		if idx > 0 {
			d.PrevID = cl.Questions[idx-1].ID
		}
		if idx < len(cl.Questions)-1 {
			d.NextID = cl.Questions[idx+1].ID
		}
	} else {
		q, _ := cl.Catalog.Get(questionID)
		d.Question = domain.ComposedQuestion{
			ID:       q.ID,
			Text:     q.Text,
			Category: q.Category,
			IsFree:   q.IsFree,
		}
	}

	if _, ok := cl.Answered[questionID]; ok {
		a, err := s.answers.Get(ctx, cl.Profile.ID, questionID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			s.logFailure(ctx, "get answer", err)
			return nil, fmt.Errorf("get answer: %w", err)
		default:
			d.Answer = a
		}
	}

	return d, nil
}

// BrowseCatalog returns the catalog with each question marked as selected by
// the profile. Unselected questions are locked when the list is full or the
// tier cannot add them.
func (s *Service) BrowseCatalog(ctx context.Context, profileID uuid.UUID) (*CatalogView, error) {
	cl, err := s.ComposedList(ctx, profileID)
	if err != nil {
		return nil, err
	}

	in := make(map[string]struct{}, len(cl.Questions))
	for _, q := range cl.Questions {
		in[q.ID] = struct{}{}
	}

	limits := s.policy.LimitFor(cl.User.IsPremium)
	quota := s.quota(cl.User.IsPremium, len(cl.Questions))

	view := s.catalogView(ctx)
	for i := range view.Items {
		item := &view.Items[i]
		_, item.Selected = in[item.ID]
		item.Locked = !item.Selected && (!quota.CanAddMore || (!limits.AllowFullCatalog && !item.IsFree))
	}
	view.Quota = &quota
	return view, nil
}

// Catalog returns the catalog in the request locale without any profile
// annotations. Questions the free tier cannot add are reported as locked.
func (s *Service) Catalog(ctx context.Context) *CatalogView {
	full := s.policy.LimitFor(false).AllowFullCatalog
	view := s.catalogView(ctx)
	for i := range view.Items {
		view.Items[i].Locked = !full && !view.Items[i].IsFree
	}
	return view
}

func (s *Service) catalogView(ctx context.Context) *CatalogView {
	cat := s.catalogFor(ctx)
	questions := cat.Questions()
	items := make([]CatalogItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, CatalogItem{CuratedQuestion: q})
	}
	return &CatalogView{
		Locale:     cat.Locale(),
		Categories: cat.Categories(),
		Items:      items,
	}
}

func (s *Service) quota(isPremium bool, total int) Quota {
	limits := s.policy.LimitFor(isPremium)
	return Quota{
		Limit:               limits.MaxQuestions,
		AllowCustom:         limits.AllowCustom,
		TotalAdded:          total,
		CanAddMore:          total < limits.MaxQuestions,
		HasReachedFreeLimit: !isPremium && total >= s.policy.FreeMaxQuestions,
	}
}
