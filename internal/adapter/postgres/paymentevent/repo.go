// Package paymentevent records processed payment gateway events so webhook
// retries are applied once.
package paymentevent

import (
	"context"

	postgres "github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres"
)

// Repo provides payment event bookkeeping backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new payment event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// MarkProcessed records the event and reports whether this is its first
// delivery.
func (r *Repo) MarkProcessed(ctx context.Context, id, eventType string) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert("payment_events").
		Columns("id", "type").
		Values(id, eventType).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "payment_event", id)
	}
	return tag.RowsAffected() == 1, nil
}
