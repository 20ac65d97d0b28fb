package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

var (
	searchLimit int
	searchScope string
	searchMode  string
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search quotes and journal entries",
	Long: `Searches the quote library and journal by relevance.
Uses the SQLite full-text index when available and falls back to an
in-memory BM25 ranker otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 uses the configured default)")
	searchCmd.Flags().StringVar(&searchScope, "scope", string(domain.ScopeAll), "restrict results: all, quotes, or journal")
	searchCmd.Flags().StringVar(&searchMode, "mode", string(domain.ModeAuto), "retrieval strategy: auto, indexed, memory, or merged")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	scope := domain.SearchScope(searchScope)
	if !scope.IsValid() {
		return fmt.Errorf("invalid scope %q (use all, quotes, or journal)", searchScope)
	}

	mode := domain.SearchMode(searchMode)
	if !mode.IsValid() {
		return fmt.Errorf("invalid mode %q (use auto, indexed, memory, or merged)", searchMode)
	}

	ctx := context.Background()
	opts := domain.SearchOptions{
		Limit: searchLimit,
		Scope: scope,
		Mode:  mode,
	}

	results, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	width := termWidth()

	cmd.Println(headerStyle.Render("Results:"))
	cmd.Println()
	for i := range results {
		title := results[i].Title()

		snippet := ""
		if len(results[i].Highlights) > 0 {
			snippet = results[i].Highlights[0]
		} else {
			snippet = truncate(results[i].Text(), width-8)
		}

		cmd.Printf("  [%d] %s %s (%.2f)\n", i+1, title,
			mutedStyle.Render(string(results[i].Kind)), results[i].Score)
		if snippet != "" {
			cmd.Printf("      %s\n", snippet)
		}
		cmd.Println()
	}

	return nil
}
