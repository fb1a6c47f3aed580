package auth

import (
	"net/mail"
	"strings"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores anything longer
	maxEmailLength    = 254
	maxNameLength     = 100
)

// RegisterInput holds parameters for the password sign-up operation.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if len([]rune(i.DisplayName)) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the password sign-in operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(email) > maxEmailLength {
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email, "@") {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}
