// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "display_name", "password_hash", "is_premium",
	"preferred_locale", "stripe_customer_id", "created_at", "updated_at",
}

type row struct {
	ID               uuid.UUID `db:"id"`
	Email            string    `db:"email"`
	DisplayName      string    `db:"display_name"`
	PasswordHash     string    `db:"password_hash"`
	IsPremium        bool      `db:"is_premium"`
	PreferredLocale  string    `db:"preferred_locale"`
	StripeCustomerID *string   `db:"stripe_customer_id"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:               r.ID,
		Email:            r.Email,
		DisplayName:      r.DisplayName,
		PasswordHash:     r.PasswordHash,
		IsPremium:        r.IsPremium,
		PreferredLocale:  r.PreferredLocale,
		StripeCustomerID: r.StripeCustomerID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address. Emails are stored lowercased.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, email)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id any) (*domain.User, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return dst.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "email", "display_name", "password_hash", "preferred_locale", "created_at", "updated_at").
		Values(u.ID, u.Email, u.DisplayName, u.PasswordHash, u.PreferredLocale, u.CreatedAt, u.UpdatedAt).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return dst.toDomain(), nil
}

// Update modifies display name and preferred locale. Nil arguments keep the
// stored value.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, displayName, preferredLocale *string) (*domain.User, error) {
	q := postgres.Builder().Update(table).Set("updated_at", squirrel.Expr("now()"))
	if displayName != nil {
		q = q.Set("display_name", *displayName)
	}
	if preferredLocale != nil {
		q = q.Set("preferred_locale", *preferredLocale)
	}
	return r.updateOne(ctx, q.Where(squirrel.Eq{"id": id}), id)
}

// SetPremium records the user's tier.
func (r *Repo) SetPremium(ctx context.Context, id uuid.UUID, premium bool) (*domain.User, error) {
	q := postgres.Builder().Update(table).
		Set("is_premium", premium).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})
	return r.updateOne(ctx, q, id)
}

// SetStripeCustomerID stores the payment gateway customer reference.
func (r *Repo) SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	sql, args, err := postgres.Builder().Update(table).
		Set("stripe_customer_id", customerID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "user", id)
	}
	return nil
}

func (r *Repo) updateOne(ctx context.Context, q squirrel.UpdateBuilder, id uuid.UUID) (*domain.User, error) {
	sql, args, err := q.Suffix(postgres.Returning(columns)).ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return dst.toDomain(), nil
}
