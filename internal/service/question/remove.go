package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// Remove deletes a question from the profile's list together with its
// answer. It reports false when the question was not in the list.
func (s *Service) Remove(ctx context.Context, input RemoveQuestionInput) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	var removed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := s.profiles.GetForUpdate(txCtx, userID, input.ProfileID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		var deleted bool
		if input.IsCustom {
			deleted, err = s.selections.DeleteCustom(txCtx, profile.ID, input.QuestionID)
		} else {
			deleted, err = s.selections.DeleteSelected(txCtx, profile.ID, input.QuestionID)
		}
		if err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		if !deleted {
			return nil
		}

		if _, err := s.answers.Delete(txCtx, profile.ID, input.QuestionID); err != nil {
			return fmt.Errorf("delete answer: %w", err)
		}

		if err := s.profiles.AdjustQuestionCount(txCtx, profile.ID, -1); err != nil {
			return fmt.Errorf("decrement question count: %w", err)
		}

		removed = true
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "remove question", err)
		return false, err
	}

	if removed {
		s.log.InfoContext(ctx, "question removed",
			slog.String("user_id", userID.String()),
			slog.String("profile_id", input.ProfileID.String()),
			slog.String("question_id", input.QuestionID),
		)
	}
	return removed, nil
}
