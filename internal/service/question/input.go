package question

import (
	"strings"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// AddCuratedInput holds the parameters for adding a catalog question.
type AddCuratedInput struct {
	ProfileID  uuid.UUID
	QuestionID string
}

// Validate checks all fields and collects all errors.
func (i AddCuratedInput) Validate() error {
	var errs []domain.FieldError
	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	if strings.TrimSpace(i.QuestionID) == "" {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	} else if domain.IsCustomQuestionID(i.QuestionID) {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "not a catalog question"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddCustomInput holds the parameters for adding a custom question. The text
// is checked by AddCustom itself and rejected without an error.
type AddCustomInput struct {
	ProfileID uuid.UUID
	Text      string
}

// Validate checks all fields and collects all errors.
func (i AddCustomInput) Validate() error {
	if i.ProfileID == uuid.Nil {
		return domain.NewValidationError("profile_id", "required")
	}
	return nil
}

// RemoveQuestionInput holds the parameters for removing a question.
type RemoveQuestionInput struct {
	ProfileID  uuid.UUID
	QuestionID string
	IsCustom   bool
}

// Validate checks all fields and collects all errors.
func (i RemoveQuestionInput) Validate() error {
	var errs []domain.FieldError
	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	if strings.TrimSpace(i.QuestionID) == "" {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	} else if domain.IsCustomQuestionID(i.QuestionID) != i.IsCustom {
		errs = append(errs, domain.FieldError{Field: "is_custom", Message: "does not match question id"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
