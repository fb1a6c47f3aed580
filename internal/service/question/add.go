package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// AddCurated adds a catalog question to the profile's list.
//
// Adding a question that is already selected, or adding past the tier limit,
// returns a rejected result without changing anything. When the policy
// restricts the free tier to free catalog questions, other picks are rejected
// with RejectionPremiumRequired.
func (s *Service) AddCurated(ctx context.Context, input AddCuratedInput) (AddResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return AddResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return AddResult{}, err
	}

	q, ok := s.catalogFor(ctx).Get(input.QuestionID)
	if !ok {
		return AddResult{}, domain.NewValidationError("question_id", "unknown catalog question")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return AddResult{}, fmt.Errorf("get user: %w", err)
	}
	limits := s.policy.LimitFor(user.IsPremium)

	var result AddResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := s.profiles.GetForUpdate(txCtx, userID, input.ProfileID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		selected, custom, err := s.loadForUpdate(txCtx, profile.ID)
		if err != nil {
			return err
		}

		switch {
		case isSelected(selected, q.ID):
			result = rejected(RejectionAlreadySelected)
			return nil
		case !limits.AllowFullCatalog && !q.IsFree:
			result = rejected(RejectionPremiumRequired)
			return nil
		case len(selected)+len(custom) >= limits.MaxQuestions:
			result = rejected(RejectionLimitReached)
			return nil
		}

		err = s.selections.AddSelected(txCtx, profile.ID, domain.SelectedQuestion{
			QuestionID: q.ID,
			Order:      NextOrder(selected, custom),
			AddedAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("add selected: %w", err)
		}

		if err := s.profiles.AdjustQuestionCount(txCtx, profile.ID, 1); err != nil {
			return fmt.Errorf("increment question count: %w", err)
		}

		result = AddResult{Added: true, QuestionID: q.ID}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "add curated question", err)
		return AddResult{}, err
	}

	s.logAdd(ctx, userID, input.ProfileID, result)
	return result, nil
}

// AddCustom adds a user-written question to the profile's list. Empty or
// overlong text is rejected like a full list.
func (s *Service) AddCustom(ctx context.Context, input AddCustomInput) (AddResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return AddResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return AddResult{}, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" || utf8.RuneCountInString(text) > s.customMaxLen {
		return rejected(RejectionInvalidText), nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return AddResult{}, fmt.Errorf("get user: %w", err)
	}
	limits := s.policy.LimitFor(user.IsPremium)
	if !limits.AllowCustom {
		return rejected(RejectionCustomNotAllowed), nil
	}

	id, err := domain.NewCustomQuestionID()
	if err != nil {
		return AddResult{}, err
	}

	var result AddResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := s.profiles.GetForUpdate(txCtx, userID, input.ProfileID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		selected, custom, err := s.loadForUpdate(txCtx, profile.ID)
		if err != nil {
			return err
		}
		if len(selected)+len(custom) >= limits.MaxQuestions {
			result = rejected(RejectionLimitReached)
			return nil
		}

		err = s.selections.AddCustom(txCtx, profile.ID, domain.CustomQuestion{
			ID:        id,
			Text:      text,
			Order:     NextOrder(selected, custom),
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("add custom: %w", err)
		}

		if err := s.profiles.AdjustQuestionCount(txCtx, profile.ID, 1); err != nil {
			return fmt.Errorf("increment question count: %w", err)
		}

		result = AddResult{Added: true, QuestionID: id}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "add custom question", err)
		return AddResult{}, err
	}

	s.logAdd(ctx, userID, input.ProfileID, result)
	return result, nil
}

// loadForUpdate reads both sources sequentially; a transaction's connection
// cannot serve concurrent queries.
func (s *Service) loadForUpdate(ctx context.Context, profileID uuid.UUID) ([]domain.SelectedQuestion, []domain.CustomQuestion, error) {
	selected, err := s.selections.ListSelected(ctx, profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("list selected: %w", err)
	}
	custom, err := s.selections.ListCustom(ctx, profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("list custom: %w", err)
	}
	return selected, custom, nil
}

func (s *Service) logAdd(ctx context.Context, userID, profileID uuid.UUID, r AddResult) {
	if !r.Added {
		s.log.InfoContext(ctx, "question not added",
			slog.String("user_id", userID.String()),
			slog.String("profile_id", profileID.String()),
			slog.String("reason", string(r.Reason)),
		)
		return
	}
	s.log.InfoContext(ctx, "question added",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", profileID.String()),
		slog.String("question_id", r.QuestionID),
	)
}

func isSelected(selected []domain.SelectedQuestion, id string) bool {
	for _, s := range selected {
		if s.QuestionID == id {
			return true
		}
	}
	return false
}
