package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/researchhub/searchd/internal/usecase/interpret"
)

var parseCategories []string

var parseCmd = &cobra.Command{
	Use:   "parse <query>",
	Short: "Run the rule-based parser offline against a query",
	Long: `Parse runs the deterministic fallback parser locally, without the
backend or the model provider, and prints the extracted filters as JSON.
Useful for debugging synonym tables and stop-word behavior.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		parser := interpret.NewLocalParser(nil)
		filters := parser.Parse(query, parseCategories)

		out := struct {
			Query      *string  `json:"query"`
			Categories []string `json:"categories"`
			Year       *int     `json:"year"`
			Author     *string  `json:"author"`
		}{Categories: filters.Categories}
		if filters.Query != "" {
			out.Query = &filters.Query
		}
		if filters.Year != 0 {
			out.Year = &filters.Year
		}
		if filters.Author != "" {
			out.Author = &filters.Author
		}

		enc, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode filters: %w", err)
		}
		cmd.Println(string(enc))
		return nil
	},
}

func init() {
	parseCmd.Flags().StringSliceVarP(&parseCategories, "categories", "c", nil,
		"candidate category names (comma separated); defaults to none")
}
