package auth

import (
	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// AuthResult is returned by Register, Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	SessionID    uuid.UUID
	User         *domain.User
}
