package cli

import (
	"github.com/spf13/cobra"

	"github.com/werdnakof/ask-parents-25-questions/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("parentstories %s\n", app.BuildVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
