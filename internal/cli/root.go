// Package cli defines the searchd command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/researchhub/searchd/internal/version"
)

// RootCmd is the searchd entry point.
var RootCmd = &cobra.Command{
	Use:   "searchd",
	Short: "AI-assisted search gateway for ResearchHub",
	Long: `searchd interprets free-text paper search queries into structured
filters (keywords, categories, year, author) and executes them against
the ResearchHub backend. A generative model does the interpretation when
available; a deterministic rule-based parser takes over when it is not.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.Date),
}

func init() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(parseCmd)
}
