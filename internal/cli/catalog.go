package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/werdnakof/ask-parents-25-questions/internal/catalog"
)

var (
	catalogLocale    string
	catalogFreeCount int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the curated question catalog",
	Long: `Prints the embedded question catalog grouped by category. The locale is
negotiated the same way the API does it, so "zh-TW" prints the "zh" catalog
and unknown locales fall back to English.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogLocale, "locale", "l", "", "catalog locale (default en)")
	catalogCmd.Flags().IntVar(&catalogFreeCount, "free", 25, "number of leading questions available on the free tier")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	reg, err := catalog.LoadEmbedded(catalogFreeCount, "en")
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	c := reg.For(reg.Match(catalogLocale))
	free := 0
	for _, q := range c.Questions() {
		if q.IsFree {
			free++
		}
	}
	cmd.Printf("Catalog %s: %d questions, %d free\n", c.Locale(), c.Len(), free)

	for _, info := range c.Categories() {
		cmd.Printf("\n%s (%d)\n", info.Name, info.QuestionCount)
		for _, q := range c.QuestionsByCategory(info.ID) {
			tag := "    "
			if q.IsFree {
				tag = "free"
			}
			cmd.Printf("  %-5s %s  %s\n", q.ID, tag, q.Text)
		}
	}
	return nil
}
