// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

const table = "profiles"

// answeredCount is evaluated per row; answers cascade with their profile.
const answeredCount = "(SELECT count(*) FROM answers a WHERE a.profile_id = profiles.id) AS answered_count"

var columns = []string{
	"id", "user_id", "name", "relationship", "photo_url", "photo_key",
	"question_count", answeredCount, "created_at", "updated_at",
}

type row struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Name          string    `db:"name"`
	Relationship  string    `db:"relationship"`
	PhotoURL      *string   `db:"photo_url"`
	PhotoKey      *string   `db:"photo_key"`
	QuestionCount int       `db:"question_count"`
	AnsweredCount int       `db:"answered_count"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:            r.ID,
		UserID:        r.UserID,
		Name:          r.Name,
		Relationship:  domain.Relationship(r.Relationship),
		PhotoURL:      r.PhotoURL,
		PhotoKey:      r.PhotoKey,
		QuestionCount: r.QuestionCount,
		AnsweredCount: r.AnsweredCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Repo provides profile persistence backed by PostgreSQL. Every lookup is
// scoped to the owning user so one user can never address another's profile.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns the user's profile.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Profile, error) {
	return r.getOne(ctx, r.owned(userID, id), id)
}

// GetForUpdate returns the user's profile and locks its row until the
// surrounding transaction ends. Concurrent writers to the same profile's
// question list queue behind this lock.
func (r *Repo) GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Profile, error) {
	return r.getOne(ctx, r.owned(userID, id).Suffix("FOR UPDATE"), id)
}

// ListByUser returns the user's profiles, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	out := make([]domain.Profile, 0, len(rows))
	for _, rw := range rows {
		out = append(out, *rw.toDomain())
	}
	return out, nil
}

func (r *Repo) owned(userID, id uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})
}

func (r *Repo) getOne(ctx context.Context, q squirrel.SelectBuilder, id uuid.UUID) (*domain.Profile, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return dst.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new profile.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "name", "relationship", "created_at", "updated_at").
		Values(p.ID, p.UserID, p.Name, string(p.Relationship), p.CreatedAt, p.UpdatedAt).
		Suffix(postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}
	return dst.toDomain(), nil
}

// Update changes name and relationship. Nil arguments keep the stored value.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, name *string, rel *domain.Relationship) (*domain.Profile, error) {
	q := postgres.Builder().Update(table).Set("updated_at", squirrel.Expr("now()"))
	if name != nil {
		q = q.Set("name", *name)
	}
	if rel != nil {
		q = q.Set("relationship", string(*rel))
	}
	return r.updateOne(ctx, q.Where(squirrel.Eq{"id": id, "user_id": userID}), id)
}

// SetPhoto stores (or with nil arguments clears) the photo reference.
func (r *Repo) SetPhoto(ctx context.Context, userID, id uuid.UUID, url, key *string) (*domain.Profile, error) {
	q := postgres.Builder().Update(table).
		Set("photo_url", url).
		Set("photo_key", key).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID})
	return r.updateOne(ctx, q, id)
}

// AdjustQuestionCount adds delta to the cached question count.
func (r *Repo) AdjustQuestionCount(ctx context.Context, id uuid.UUID, delta int) error {
	sql, args, err := postgres.Builder().Update(table).
		Set("question_count", squirrel.Expr("question_count + ?", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "profile", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "profile", id)
	}
	return nil
}

// Delete removes the profile. Selections, custom questions and answers go
// with it through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "profile", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "profile", id)
	}
	return nil
}

func (r *Repo) updateOne(ctx context.Context, q squirrel.UpdateBuilder, id uuid.UUID) (*domain.Profile, error) {
	sql, args, err := q.Suffix(postgres.Returning(columns)).ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return dst.toDomain(), nil
}
