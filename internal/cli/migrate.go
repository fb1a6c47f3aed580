package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	applied, err := postgres.Migrate(cmd.Context(), cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if len(applied) == 0 {
		cmd.Println("Database is up to date.")
		return nil
	}
	for _, m := range applied {
		cmd.Printf("applied %05d %s\n", m.Version, m.Source)
	}
	return nil
}
