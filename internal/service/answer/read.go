package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/question"
)

// SummaryEntry is one answered question of the summary.
type SummaryEntry struct {
	// Number is the 1-based position of the question in the list.
	Number   int
	Question domain.ComposedQuestion
	Answer   domain.Answer
}

// Summary collects a profile's answered questions in list order.
type Summary struct {
	Profile  *domain.Profile
	Entries  []SummaryEntry
	Progress question.Progress
}

// ListAnswers returns every answer of the profile, oldest first.
func (s *Service) ListAnswers(ctx context.Context, profileID uuid.UUID) ([]domain.Answer, error) {
	cl, err := s.questions.ComposedList(ctx, profileID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answers.List(ctx, cl.Profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return answers, nil
}

// GetAnswer returns the answer to one question of the profile.
func (s *Service) GetAnswer(ctx context.Context, profileID uuid.UUID, questionID string) (*domain.Answer, error) {
	cl, err := s.questions.ComposedList(ctx, profileID)
	if err != nil {
		return nil, err
	}

	a, err := s.answers.Get(ctx, cl.Profile.ID, questionID)
	if err != nil {
		return nil, fmt.Errorf("get answer: %w", err)
	}
	return a, nil
}

// Summary returns the answered questions of the profile in list order.
// Blank answers are left out.
func (s *Service) Summary(ctx context.Context, profileID uuid.UUID) (*Summary, error) {
	cl, err := s.questions.ComposedList(ctx, profileID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answers.List(ctx, cl.Profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	byID := make(map[string]domain.Answer, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a
	}

	sum := &Summary{
		Profile:  cl.Profile,
		Entries:  []SummaryEntry{},
		Progress: question.DeriveProgress(cl.Questions, cl.Answered),
	}
	for i, q := range cl.Questions {
		a, ok := byID[q.ID]
		if !ok || strings.TrimSpace(a.Answer) == "" {
			continue
		}
		sum.Entries = append(sum.Entries, SummaryEntry{Number: i + 1, Question: q, Answer: a})
	}
	return sum, nil
}
