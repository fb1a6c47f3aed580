package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a free-tier user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:              uuid.New(),
		Email:           "testuser-" + suffix + "@example.com",
		DisplayName:     "Test User " + suffix,
		PasswordHash:    "not-a-real-hash",
		PreferredLocale: "en",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, display_name, password_hash, preferred_locale, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.PreferredLocale, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedProfile creates a profile owned by userID.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Profile {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Mum " + uniqueSuffix(),
		Relationship: domain.RelationshipMother,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, user_id, name, relationship, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.UserID, p.Name, string(p.Relationship), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}
