package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/migrations"
)

// MigrationResult describes one applied migration.
type MigrationResult struct {
	Version int64
	Source  string
}

// Migrate applies all pending migrations to the database at dsn.
func Migrate(ctx context.Context, dsn string) ([]MigrationResult, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return MigrateDB(ctx, db)
}

// MigrateDB applies all pending migrations using an open *sql.DB.
func MigrateDB(ctx context.Context, db *sql.DB) ([]MigrationResult, error) {
	// goose.NewProvider handles $$-delimited bodies, unlike the legacy
	// goose.Up which splits on semicolons.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	out := make([]MigrationResult, 0, len(results))
	for _, r := range results {
		out = append(out, MigrationResult{Version: r.Source.Version, Source: r.Source.Path})
	}
	return out, nil
}
