package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres"
	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/session"
	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/user"
	"github.com/werdnakof/ask-parents-25-questions/internal/auth"
	authsvc "github.com/werdnakof/ask-parents-25-questions/internal/service/auth"
)

const cleanupTimeout = 5 * time.Minute

var cleanupSessionsCmd = &cobra.Command{
	Use:   "cleanup-sessions",
	Short: "Delete expired and signed-out sessions",
	Long: `Removes sessions whose refresh token has expired or that were revoked
by sign-out. Intended to be run by an external scheduler.`,
	Args: cobra.NoArgs,
	RunE: runCleanupSessions,
}

func init() {
	rootCmd.AddCommand(cleanupSessionsCmd)
}

func runCleanupSessions(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cleanupTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := authsvc.NewService(
		logger,
		user.New(pool),
		session.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
		cfg.Questions.DefaultLocale,
	)

	deleted, err := svc.CleanupSessions(ctx)
	if err != nil {
		return err
	}

	cmd.Printf("Deleted %d sessions.\n", deleted)
	return nil
}
