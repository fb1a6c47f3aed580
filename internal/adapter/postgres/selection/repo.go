// Package selection stores which questions a profile holds: catalog
// questions picked by the user and custom questions written by the user.
package selection

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

const (
	selectedTable = "selected_questions"
	customTable   = "custom_questions"
)

type selectedRow struct {
	QuestionID string    `db:"question_id"`
	SortOrder  int       `db:"sort_order"`
	AddedAt    time.Time `db:"added_at"`
}

type customRow struct {
	ID        string    `db:"id"`
	Text      string    `db:"text"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

// SelectedWithProfileID is a catalog selection tagged with its profile, as
// returned by batch reads.
type SelectedWithProfileID struct {
	ProfileID uuid.UUID
	domain.SelectedQuestion
}

// CustomWithProfileID is a custom question tagged with its profile.
type CustomWithProfileID struct {
	ProfileID uuid.UUID
	domain.CustomQuestion
}

// Repo provides selection persistence backed by PostgreSQL. Callers verify
// profile ownership before using it.
type Repo struct {
	db postgres.Querier
}

// New creates a new selection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Selected catalog questions
// ---------------------------------------------------------------------------

// ListSelected returns the profile's catalog selections ordered by position.
func (r *Repo) ListSelected(ctx context.Context, profileID uuid.UUID) ([]domain.SelectedQuestion, error) {
	sql, args, err := postgres.Builder().
		Select("question_id", "sort_order", "added_at").
		From(selectedTable).
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []selectedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "selected_question", profileID)
	}

	out := make([]domain.SelectedQuestion, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.SelectedQuestion{
			QuestionID: rw.QuestionID,
			Order:      rw.SortOrder,
			AddedAt:    rw.AddedAt,
		})
	}
	return out, nil
}

// AddSelected inserts a catalog selection. Returns domain.ErrAlreadyExists
// if the profile already holds the question.
func (r *Repo) AddSelected(ctx context.Context, profileID uuid.UUID, q domain.SelectedQuestion) error {
	sql, args, err := postgres.Builder().
		Insert(selectedTable).
		Columns("profile_id", "question_id", "sort_order", "added_at").
		Values(profileID, q.QuestionID, q.Order, q.AddedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "selected_question", q.QuestionID)
	}
	return nil
}

// DeleteSelected removes a catalog selection and reports whether it existed.
func (r *Repo) DeleteSelected(ctx context.Context, profileID uuid.UUID, questionID string) (bool, error) {
	return r.delete(ctx, selectedTable, squirrel.Eq{"profile_id": profileID, "question_id": questionID}, questionID)
}

// ---------------------------------------------------------------------------
// Custom questions
// ---------------------------------------------------------------------------

// ListCustom returns the profile's custom questions ordered by position.
func (r *Repo) ListCustom(ctx context.Context, profileID uuid.UUID) ([]domain.CustomQuestion, error) {
	sql, args, err := postgres.Builder().
		Select("id", "text", "sort_order", "created_at").
		From(customTable).
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []customRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "custom_question", profileID)
	}

	out := make([]domain.CustomQuestion, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.CustomQuestion{
			ID:        rw.ID,
			Text:      rw.Text,
			Order:     rw.SortOrder,
			CreatedAt: rw.CreatedAt,
		})
	}
	return out, nil
}

// AddCustom inserts a custom question.
func (r *Repo) AddCustom(ctx context.Context, profileID uuid.UUID, q domain.CustomQuestion) error {
	sql, args, err := postgres.Builder().
		Insert(customTable).
		Columns("profile_id", "id", "text", "sort_order", "created_at").
		Values(profileID, q.ID, q.Text, q.Order, q.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "custom_question", q.ID)
	}
	return nil
}

// DeleteCustom removes a custom question and reports whether it existed.
func (r *Repo) DeleteCustom(ctx context.Context, profileID uuid.UUID, questionID string) (bool, error) {
	return r.delete(ctx, customTable, squirrel.Eq{"profile_id": profileID, "id": questionID}, questionID)
}

// ---------------------------------------------------------------------------
// Batch reads
// ---------------------------------------------------------------------------

// ListSelectedByProfileIDs returns the catalog selections of every listed
// profile owned by userID, ordered by profile then position.
func (r *Repo) ListSelectedByProfileIDs(ctx context.Context, userID uuid.UUID, profileIDs []uuid.UUID) ([]SelectedWithProfileID, error) {
	if len(profileIDs) == 0 {
		return []SelectedWithProfileID{}, nil
	}

	sql, args, err := batchQuery(selectedTable, userID, profileIDs, "s.question_id", "s.sort_order", "s.added_at")
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ProfileID uuid.UUID `db:"profile_id"`
		selectedRow
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list selected by profile_ids: %w", err)
	}

	out := make([]SelectedWithProfileID, 0, len(rows))
	for _, rw := range rows {
		out = append(out, SelectedWithProfileID{
			ProfileID: rw.ProfileID,
			SelectedQuestion: domain.SelectedQuestion{
				QuestionID: rw.QuestionID,
				Order:      rw.SortOrder,
				AddedAt:    rw.AddedAt,
			},
		})
	}
	return out, nil
}

// ListCustomByProfileIDs returns the custom questions of every listed profile
// owned by userID, ordered by profile then position.
func (r *Repo) ListCustomByProfileIDs(ctx context.Context, userID uuid.UUID, profileIDs []uuid.UUID) ([]CustomWithProfileID, error) {
	if len(profileIDs) == 0 {
		return []CustomWithProfileID{}, nil
	}

	sql, args, err := batchQuery(customTable, userID, profileIDs, "s.id", "s.text", "s.sort_order", "s.created_at")
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ProfileID uuid.UUID `db:"profile_id"`
		customRow
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list custom by profile_ids: %w", err)
	}

	out := make([]CustomWithProfileID, 0, len(rows))
	for _, rw := range rows {
		out = append(out, CustomWithProfileID{
			ProfileID: rw.ProfileID,
			CustomQuestion: domain.CustomQuestion{
				ID:        rw.ID,
				Text:      rw.Text,
				Order:     rw.SortOrder,
				CreatedAt: rw.CreatedAt,
			},
		})
	}
	return out, nil
}

// batchQuery selects cols from table (aliased s) for the given profiles,
// joined to profiles so only userID's rows come back.
func batchQuery(table string, userID uuid.UUID, profileIDs []uuid.UUID, cols ...string) (string, []any, error) {
	return postgres.Builder().
		Select(append([]string{"s.profile_id"}, cols...)...).
		From(table + " s").
		Join("profiles p ON p.id = s.profile_id").
		Where(squirrel.Eq{"p.user_id": userID, "s.profile_id": profileIDs}).
		OrderBy("s.profile_id", "s.sort_order ASC").
		ToSql()
}

func (r *Repo) delete(ctx context.Context, table string, where squirrel.Eq, id string) (bool, error) {
	sql, args, err := postgres.Builder().Delete(table).Where(where).ToSql()
	if err != nil {
		return false, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, table, id)
	}
	return tag.RowsAffected() > 0, nil
}
