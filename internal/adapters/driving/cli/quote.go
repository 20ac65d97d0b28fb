package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Manage the quote library",
	Long:  `Add, list, favourite, and read inspirational quotes.`,
}

var quoteAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a quote to the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuoteAdd,
}

var quoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quotes",
	RunE:  runQuoteList,
}

var quoteRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random quote",
	RunE:  runQuoteRandom,
}

var quoteReadCmd = &cobra.Command{
	Use:   "read [quote-id]",
	Short: "Show a quote and mark it read",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuoteRead,
}

var quoteFavoriteCmd = &cobra.Command{
	Use:   "favorite [quote-id]",
	Short: "Toggle a quote's favourite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuoteFavorite,
}

var quoteRmCmd = &cobra.Command{
	Use:   "rm [quote-id]",
	Short: "Remove a quote",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuoteRm,
}

var (
	quoteAuthor   string
	quoteCategory string
	quoteListJSON bool
)

func init() {
	quoteAddCmd.Flags().StringVarP(&quoteAuthor, "author", "a", "", "attributed author")
	quoteAddCmd.Flags().StringVarP(&quoteCategory, "category", "c", "", "category label")
	quoteListCmd.Flags().StringVarP(&quoteCategory, "category", "c", "", "filter by category")
	quoteListCmd.Flags().BoolVar(&quoteListJSON, "json", false, "output as JSON")

	quoteCmd.AddCommand(quoteAddCmd)
	quoteCmd.AddCommand(quoteListCmd)
	quoteCmd.AddCommand(quoteRandomCmd)
	quoteCmd.AddCommand(quoteReadCmd)
	quoteCmd.AddCommand(quoteFavoriteCmd)
	quoteCmd.AddCommand(quoteRmCmd)
	rootCmd.AddCommand(quoteCmd)
}

func runQuoteAdd(cmd *cobra.Command, args []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	quote, err := quoteService.Add(context.Background(), domain.Quote{
		Text:     args[0],
		Author:   quoteAuthor,
		Category: quoteCategory,
	})
	if err != nil {
		return fmt.Errorf("failed to add quote: %w", err)
	}

	cmd.Printf("Added quote %s\n", quote.ID)
	return nil
}

func runQuoteList(cmd *cobra.Command, _ []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	quotes, err := quoteService.List(context.Background(), quoteCategory)
	if err != nil {
		return fmt.Errorf("failed to list quotes: %w", err)
	}

	if quoteListJSON {
		data, err := json.MarshalIndent(quotes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal quotes: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(quotes) == 0 {
		cmd.Println("No quotes yet. Add one with 'solace quote add'.")
		return nil
	}

	width := termWidth()
	for i := range quotes {
		printQuoteLine(cmd, &quotes[i], width)
	}
	cmd.Printf("\nTotal: %d quotes\n", len(quotes))
	return nil
}

func runQuoteRandom(cmd *cobra.Command, _ []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	quote, err := quoteService.Random(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyLibrary) {
			cmd.Println("The quote library is empty. Add one with 'solace quote add'.")
			return nil
		}
		return fmt.Errorf("failed to pick a quote: %w", err)
	}

	printQuote(cmd, quote)
	return nil
}

func runQuoteRead(cmd *cobra.Command, args []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	quote, err := quoteService.MarkRead(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to read quote: %w", err)
	}

	printQuote(cmd, quote)
	return nil
}

func runQuoteFavorite(cmd *cobra.Command, args []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	quote, err := quoteService.ToggleFavorite(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to toggle favourite: %w", err)
	}

	if quote.IsFavorite {
		cmd.Printf("Quote %s marked as favourite.\n", quote.ID)
	} else {
		cmd.Printf("Quote %s is no longer a favourite.\n", quote.ID)
	}
	return nil
}

func runQuoteRm(cmd *cobra.Command, args []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	if err := quoteService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove quote: %w", err)
	}

	cmd.Printf("Quote %s removed.\n", args[0])
	return nil
}

func printQuote(cmd *cobra.Command, q *domain.Quote) {
	cmd.Println()
	cmd.Printf("  %q\n", q.Text)
	if q.Author != "" {
		cmd.Printf("      %s\n", mutedStyle.Render("- "+q.Author))
	}
	cmd.Println()
}

func printQuoteLine(cmd *cobra.Command, q *domain.Quote, width int) {
	mark := " "
	if q.IsFavorite {
		mark = favoriteStyle.Render(favoriteMark)
	}

	author := q.Author
	if author == "" {
		author = "unknown"
	}

	cmd.Printf("  %s %s  %s\n", mark, truncate(q.Text, width-30), mutedStyle.Render(author))
	cmd.Printf("      %s\n", mutedStyle.Render("id: "+q.ID))
}
