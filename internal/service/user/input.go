package user

import (
	"slices"
	"strings"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

const maxDisplayNameLength = 100

// UpdateMeInput holds parameters for the account update operation.
// Nil fields are left unchanged.
type UpdateMeInput struct {
	DisplayName     *string
	PreferredLocale *string
}

// Validate checks all fields against the supported locales and collects all errors.
func (i UpdateMeInput) Validate(locales []string) error {
	var errs []domain.FieldError

	if i.DisplayName == nil && i.PreferredLocale == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.DisplayName != nil {
		name := strings.TrimSpace(*i.DisplayName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
		} else if len([]rune(name)) > maxDisplayNameLength {
			errs = append(errs, domain.FieldError{Field: "display_name", Message: "max 100 characters"})
		}
	}

	if i.PreferredLocale != nil && !slices.Contains(locales, *i.PreferredLocale) {
		errs = append(errs, domain.FieldError{
			Field:   "preferred_locale",
			Message: "must be one of " + strings.Join(locales, ", "),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
