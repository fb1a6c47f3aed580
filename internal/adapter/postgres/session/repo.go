// Package session implements the Session repository using PostgreSQL.
// A session row holds the hashed refresh token of one sign-in.
package session

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

const table = "sessions"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r row) toDomain() *domain.Session {
	return &domain.Session{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new session.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error) {
	id := uuid.New()
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(id, userID, tokenHash, expiresAt).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return dst.toDomain(), nil
}

// GetByID returns a session regardless of its state.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetActiveByHash returns a non-revoked, non-expired session by refresh
// token hash. Returns domain.ErrNotFound otherwise.
func (r *Repo) GetActiveByHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	where := squirrel.And{
		squirrel.Eq{"token_hash": tokenHash},
		squirrel.Eq{"revoked_at": nil},
		squirrel.Expr("expires_at > now()"),
	}
	return r.getOne(ctx, where, "by_hash")
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id any) (*domain.Session, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return dst.toDomain(), nil
}

// Rotate replaces the refresh token hash and expiry of an active session.
func (r *Repo) Rotate(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	sql, args, err := postgres.Builder().Update(table).
		Set("token_hash", tokenHash).
		Set("expires_at", expiresAt).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "session", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "session", id)
	}
	return nil
}

// Revoke signs a session out. Idempotent: revoking an already-revoked
// session is not an error.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session", id)
	}
	return nil
}

// DeleteExpired removes all expired or revoked sessions.
// Returns the count of deleted rows.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().Delete(table).
		Where(squirrel.Or{
			squirrel.Expr("expires_at < now()"),
			squirrel.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "session", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
