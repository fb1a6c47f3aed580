// Package cli implements the parentstories command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/werdnakof/ask-parents-25-questions/internal/app"
	"github.com/werdnakof/ask-parents-25-questions/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "parentstories",
	Short: "Backend for recording the stories of parents and grandparents",
	Long: `parentstories serves the HTTP API for building per-parent question lists,
answering them and upgrading to premium. Configuration is read from the
file named by --config, else CONFIG_PATH (default config.yaml), and
environment variables.`,
	SilenceUsage: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file")
}

// Execute runs the command named by the process arguments.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig reads the configuration and builds the logger writing to the
// command's stderr.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, app.NewLogger(cmd.ErrOrStderr(), cfg.Log), nil
}
