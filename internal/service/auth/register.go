package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// Register creates a new user with email + password authentication and
// signs them in. Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	name := input.DisplayName
	if name == "" {
		name, _, _ = strings.Cut(input.Email, "@")
	}
	locale := ctxutil.LocaleFromCtx(ctx)
	if locale == "" {
		locale = s.defaultLocale
	}

	// Email uniqueness is enforced by a DB constraint.
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:              uuid.New(),
			Email:           input.Email,
			DisplayName:     name,
			PasswordHash:    string(hash),
			PreferredLocale: locale,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.startSession(txCtx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", result.User.ID.String()))

	return result, nil
}
