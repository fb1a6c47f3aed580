// Package answer implements the Answer repository using PostgreSQL.
package answer

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres"
	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

const table = "answers"

var columns = []string{
	"profile_id", "question_id", "question_text", "question_text_locale",
	"is_custom_question", "answer", "answered_at", "updated_at",
}

// upsertSuffix keeps answered_at from the first save and never lets
// updated_at move backwards.
const upsertSuffix = `ON CONFLICT (profile_id, question_id) DO UPDATE SET
	answer = EXCLUDED.answer,
	question_text = EXCLUDED.question_text,
	question_text_locale = EXCLUDED.question_text_locale,
	is_custom_question = EXCLUDED.is_custom_question,
	updated_at = GREATEST(answers.updated_at, EXCLUDED.updated_at)`

type row struct {
	ProfileID          uuid.UUID `db:"profile_id"`
	QuestionID         string    `db:"question_id"`
	QuestionText       string    `db:"question_text"`
	QuestionTextLocale string    `db:"question_text_locale"`
	IsCustomQuestion   bool      `db:"is_custom_question"`
	Answer             string    `db:"answer"`
	AnsweredAt         time.Time `db:"answered_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Answer {
	return domain.Answer{
		ProfileID:          r.ProfileID,
		QuestionID:         r.QuestionID,
		QuestionText:       r.QuestionText,
		QuestionTextLocale: r.QuestionTextLocale,
		IsCustomQuestion:   r.IsCustomQuestion,
		Answer:             r.Answer,
		AnsweredAt:         r.AnsweredAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new answer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the answer to one question.
func (r *Repo) Get(ctx context.Context, profileID uuid.UUID, questionID string) (*domain.Answer, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"profile_id": profileID, "question_id": questionID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "answer", questionID)
	}
	a := dst.toDomain()
	return &a, nil
}

// List returns every answer of the profile.
func (r *Repo) List(ctx context.Context, profileID uuid.UUID) ([]domain.Answer, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("answered_at ASC", "question_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "answer", profileID)
	}

	out := make([]domain.Answer, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// ListAnsweredIDs returns the IDs of answered questions.
func (r *Repo) ListAnsweredIDs(ctx context.Context, profileID uuid.UUID) ([]string, error) {
	sql, args, err := postgres.Builder().Select("question_id").From(table).
		Where(squirrel.Eq{"profile_id": profileID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, sql, args...); err != nil {
		return nil, postgres.MapError(err, "answer", profileID)
	}
	return ids, nil
}

// ListByProfileIDs returns the answers of every listed profile owned by
// userID, grouped by profile in answer order. Profiles of other users yield
// no rows.
func (r *Repo) ListByProfileIDs(ctx context.Context, userID uuid.UUID, profileIDs []uuid.UUID) ([]domain.Answer, error) {
	if len(profileIDs) == 0 {
		return []domain.Answer{}, nil
	}

	sql, args, err := postgres.Builder().Select(prefixed("a.", columns)...).From(table + " a").
		Join("profiles p ON p.id = a.profile_id").
		Where(squirrel.Eq{"a.profile_id": profileIDs, "p.user_id": userID}).
		OrderBy("a.profile_id", "a.answered_at ASC", "a.question_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list answers by profile_ids: %w", err)
	}

	out := make([]domain.Answer, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + c
	}
	return out
}

// Upsert creates or replaces the answer text. answered_at is written only on
// the first save.
func (r *Repo) Upsert(ctx context.Context, a *domain.Answer) (*domain.Answer, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(a.ProfileID, a.QuestionID, a.QuestionText, a.QuestionTextLocale,
			a.IsCustomQuestion, a.Answer, a.AnsweredAt, a.UpdatedAt).
		Suffix(upsertSuffix + " " + postgres.Returning(columns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "answer", a.QuestionID)
	}
	out := dst.toDomain()
	return &out, nil
}

// Delete removes the answer to one question and reports whether it existed.
func (r *Repo) Delete(ctx context.Context, profileID uuid.UUID, questionID string) (bool, error) {
	sql, args, err := postgres.Builder().Delete(table).
		Where(squirrel.Eq{"profile_id": profileID, "question_id": questionID}).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "answer", questionID)
	}
	return tag.RowsAffected() > 0, nil
}
