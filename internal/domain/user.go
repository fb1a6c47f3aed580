package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID               uuid.UUID
	Email            string
	DisplayName      string
	PasswordHash     string
	IsPremium        bool
	PreferredLocale  string
	StripeCustomerID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Tier returns the user's current tier state.
func (u *User) Tier() TierState {
	return TierState{IsPremium: u.IsPremium}
}

// Session is an authenticated sign-in. The refresh token is stored hashed;
// access tokens carry the session ID and stop validating once it is revoked.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the session has been signed out.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// IsActive reports whether the session can still authenticate requests.
func (s *Session) IsActive(now time.Time) bool {
	return !s.IsRevoked() && !s.IsExpired(now)
}
