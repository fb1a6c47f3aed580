package graphql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
	"github.com/werdnakof/ask-parents-25-questions/internal/transport/graphql/dataloader"
)

// userService defines what the resolver needs from the user service.
type userService interface {
	Me(ctx context.Context) (*domain.User, error)
}

// profileService defines what the resolver needs from the profile service.
type profileService interface {
	List(ctx context.Context) ([]domain.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// catalogService defines what the resolver needs from the question service.
type catalogService interface {
	Catalog(ctx context.Context) *question.CatalogView
}

// fieldFunc resolves one schema field of a parent object.
type fieldFunc func(ctx context.Context, obj any, args map[string]any) (any, error)

// Resolver holds the services behind the read schema.
type Resolver struct {
	users    userService
	profiles profileService
	catalog  catalogService
}

// NewResolver creates a new Resolver.
func NewResolver(users userService, profiles profileService, catalog catalogService) *Resolver {
	return &Resolver{users: users, profiles: profiles, catalog: catalog}
}

// fields returns the explicit resolvers keyed by "Type.field". Every other
// field is read from the graphql-tagged struct field of the parent model.
func (r *Resolver) fields() map[string]fieldFunc {
	return map[string]fieldFunc{
		"Query.me":       r.me,
		"Query.profiles": r.profileList,
		"Query.profile":  r.profile,
		"Query.catalog":  r.catalogRoot,

		"Profile.questions": r.profileQuestions,
		"Profile.answers":   r.profileAnswers,
		"Profile.progress":  r.profileProgress,

		"Question.answer": r.questionAnswer,

		"Catalog.categories": r.catalogCategories,
		"Catalog.questions":  r.catalogQuestions,
	}
}

// ---------------------------------------------------------------------------
// Query
// ---------------------------------------------------------------------------

func (r *Resolver) me(ctx context.Context, _ any, _ map[string]any) (any, error) {
	u, err := r.users.Me(ctx)
	if err != nil {
		return nil, err
	}
	return toUser(u), nil
}

func (r *Resolver) profileList(ctx context.Context, _ any, _ map[string]any) (any, error) {
	list, err := r.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Profile, 0, len(list))
	for i := range list {
		out = append(out, toProfile(&list[i]))
	}
	return out, nil
}

func (r *Resolver) profile(ctx context.Context, _ any, args map[string]any) (any, error) {
	id, err := uuidArg(args, "id")
	if err != nil {
		return nil, err
	}
	p, err := r.profiles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProfile(p), nil
}

func (r *Resolver) catalogRoot(ctx context.Context, _ any, _ map[string]any) (any, error) {
	view := r.catalog.Catalog(ctx)
	return &Catalog{Locale: view.Locale, view: view}, nil
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

func (r *Resolver) profileQuestions(ctx context.Context, obj any, _ map[string]any) (any, error) {
	p := obj.(*Profile)
	list, err := dataloader.FromContext(ctx).QuestionsByProfileID.Load(ctx, p.ID)()
	if err != nil {
		return nil, err
	}
	return toQuestions(p.ID, list), nil
}

func (r *Resolver) profileAnswers(ctx context.Context, obj any, _ map[string]any) (any, error) {
	p := obj.(*Profile)
	answers, err := dataloader.FromContext(ctx).AnswersByProfileID.Load(ctx, p.ID)()
	if err != nil {
		return nil, err
	}
	out := make([]*Answer, 0, len(answers))
	for _, a := range answers {
		out = append(out, toAnswer(a))
	}
	return out, nil
}

// profileProgress counts answers to questions still in the list, the same
// way the REST question list does.
func (r *Resolver) profileProgress(ctx context.Context, obj any, _ map[string]any) (any, error) {
	p := obj.(*Profile)
	loaders := dataloader.FromContext(ctx)

	questionsThunk := loaders.QuestionsByProfileID.Load(ctx, p.ID)
	answersThunk := loaders.AnswersByProfileID.Load(ctx, p.ID)

	list, err := questionsThunk()
	if err != nil {
		return nil, err
	}
	answers, err := answersThunk()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	pr := question.DeriveProgress(list, question.AnsweredSet(ids))
	return &Progress{Answered: pr.AnsweredCount, Total: pr.Total, Percentage: pr.Percentage}, nil
}

// ---------------------------------------------------------------------------
// Question
// ---------------------------------------------------------------------------

func (r *Resolver) questionAnswer(ctx context.Context, obj any, _ map[string]any) (any, error) {
	q := obj.(*Question)
	answers, err := dataloader.FromContext(ctx).AnswersByProfileID.Load(ctx, q.ProfileID)()
	if err != nil {
		return nil, err
	}
	for _, a := range answers {
		if a.QuestionID == q.ID {
			return toAnswer(a), nil
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

func (r *Resolver) catalogCategories(_ context.Context, obj any, _ map[string]any) (any, error) {
	c := obj.(*Catalog)
	out := make([]*Category, 0, len(c.view.Categories))
	for _, info := range c.view.Categories {
		out = append(out, toCategory(info))
	}
	return out, nil
}

func (r *Resolver) catalogQuestions(_ context.Context, obj any, args map[string]any) (any, error) {
	c := obj.(*Catalog)
	category, _ := args["category"].(string)
	freeOnly, _ := args["freeOnly"].(bool)

	out := make([]*CatalogQuestion, 0, len(c.view.Items))
	for _, item := range c.view.Items {
		if category != "" && string(item.Category) != category {
			continue
		}
		if freeOnly && !item.IsFree {
			continue
		}
		out = append(out, &CatalogQuestion{
			ID:       item.ID,
			Text:     item.Text,
			Category: string(item.Category),
			IsFree:   item.IsFree,
			Locked:   item.Locked,
		})
	}
	return out, nil
}

func uuidArg(args map[string]any, name string) (uuid.UUID, error) {
	s, _ := args[name].(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, fmt.Sprintf("invalid UUID %q", s))
	}
	return id, nil
}
