package answer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// SaveResult is the outcome of SaveAnswer. Saved is false when the text did
// not change and nothing was written; Answer then holds the stored answer,
// if any.
type SaveResult struct {
	Saved  bool
	Answer *domain.Answer
}

// SaveAnswer creates or updates the answer to a question in the profile's
// list. The question text is snapshotted from the list in the request
// locale. Clients debounce keystrokes; an unchanged text, or an empty text
// with no previous answer, is not written.
//
// The list check and the write share a transaction holding the profile row
// lock, so a save cannot recreate the answer of a question removed
// concurrently.
func (s *Service) SaveAnswer(ctx context.Context, input SaveAnswerInput) (SaveResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return SaveResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(s.maxLen); err != nil {
		return SaveResult{}, err
	}
	text := strings.TrimSpace(input.Text)

	var (
		result  SaveResult
		created bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cl, err := s.questions.ComposedListForUpdate(txCtx, input.ProfileID)
		if err != nil {
			return err
		}
		idx := question.IndexOf(cl.Questions, input.QuestionID)
		if idx < 0 {
			return domain.ErrForbidden
		}
		q := cl.Questions[idx]

		existing, err := s.answers.Get(txCtx, cl.Profile.ID, q.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get answer: %w", err)
		}

		if existing == nil && text == "" {
			return nil
		}
		if existing != nil && strings.TrimSpace(existing.Answer) == text {
			result = SaveResult{Answer: existing}
			return nil
		}

		now := time.Now().UTC()
		saved, err := s.answers.Upsert(txCtx, &domain.Answer{
			ProfileID:          cl.Profile.ID,
			QuestionID:         q.ID,
			QuestionText:       q.Text,
			QuestionTextLocale: cl.Catalog.Locale(),
			IsCustomQuestion:   q.IsCustom,
			Answer:             text,
			AnsweredAt:         now,
			UpdatedAt:          now,
		})
		if err != nil {
			return fmt.Errorf("upsert answer: %w", err)
		}

		result = SaveResult{Saved: true, Answer: saved}
		created = existing == nil
		return nil
	})
	if err != nil {
		if !domain.IsExpected(err) {
			s.log.ErrorContext(ctx, "save answer failed", slog.String("error", err.Error()))
		}
		return SaveResult{}, err
	}

	if result.Saved {
		s.log.InfoContext(ctx, "answer saved",
			slog.String("user_id", userID.String()),
			slog.String("profile_id", input.ProfileID.String()),
			slog.String("question_id", input.QuestionID),
			slog.Bool("created", created),
		)
	}
	return result, nil
}
