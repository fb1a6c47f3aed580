package answer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// SaveAnswerInput holds the parameters for saving an answer.
type SaveAnswerInput struct {
	ProfileID  uuid.UUID
	QuestionID string
	Text       string
}

// Validate checks all fields and collects all errors.
func (i SaveAnswerInput) Validate(maxLen int) error {
	var errs []domain.FieldError
	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	if strings.TrimSpace(i.QuestionID) == "" {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Text)) > maxLen {
		errs = append(errs, domain.FieldError{Field: "answer", Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
