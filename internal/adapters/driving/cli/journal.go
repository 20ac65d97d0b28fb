package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	importfs "github.com/solace-labs/solace-cli/internal/adapters/driven/importer/fs"
	"github.com/solace-labs/solace-cli/internal/core/domain"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journal entries",
	Long:  `Write, list, and revisit private journal entries.`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Write a new journal entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalAdd,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show [entry-id]",
	Short: "Show a full journal entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalRmCmd = &cobra.Command{
	Use:   "rm [entry-id]",
	Short: "Remove a journal entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRm,
}

var journalFavoriteCmd = &cobra.Command{
	Use:   "favorite [entry-id]",
	Short: "Toggle an entry's favourite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalFavorite,
}

var journalImportCmd = &cobra.Command{
	Use:   "import [directory]",
	Short: "Import .txt and .md files as journal entries",
	Long: `Imports every .txt and .md file in a directory as a journal entry.
With --watch, keeps the directory under observation and imports files
as they appear until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runJournalImport,
}

var (
	journalTitle    string
	journalMood     string
	journalTags     []string
	journalTag      string
	journalListJSON bool
	journalWatch    bool
)

func init() {
	journalAddCmd.Flags().StringVarP(&journalTitle, "title", "t", "", "optional entry title")
	journalAddCmd.Flags().StringVarP(&journalMood, "mood", "m", "", "mood: great, good, neutral, low, or bad")
	journalAddCmd.Flags().StringSliceVar(&journalTags, "tag", nil, "tags (repeatable)")
	journalListCmd.Flags().StringVar(&journalTag, "tag", "", "filter by tag")
	journalListCmd.Flags().BoolVar(&journalListJSON, "json", false, "output as JSON")
	journalImportCmd.Flags().BoolVarP(&journalWatch, "watch", "w", false, "watch the directory and import continuously")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalRmCmd)
	journalCmd.AddCommand(journalFavoriteCmd)
	journalCmd.AddCommand(journalImportCmd)
	rootCmd.AddCommand(journalCmd)
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	entry, err := journalService.Add(context.Background(), domain.JournalEntry{
		Title:   journalTitle,
		Content: args[0],
		Mood:    domain.Mood(journalMood),
		Tags:    journalTags,
	})
	if err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}

	cmd.Printf("Added entry %s (%d words)\n", entry.ID, entry.WordCount)
	return nil
}

func runJournalList(cmd *cobra.Command, _ []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	entries, err := journalService.List(context.Background(), journalTag)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	if journalListJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("No journal entries yet. Write one with 'solace journal add'.")
		return nil
	}

	width := termWidth()
	for i := range entries {
		e := &entries[i]

		mark := " "
		if e.IsFavorite {
			mark = favoriteStyle.Render(favoriteMark)
		}
		title := e.Title
		if title == "" {
			title = truncate(e.Content, 40)
		}

		cmd.Printf("  %s %s  %s\n", mark, e.CreatedAt.Format("2006-01-02"), truncate(title, width-30))
		detail := fmt.Sprintf("id: %s  %d words", e.ID, e.WordCount)
		if e.Mood != "" {
			detail += "  mood: " + string(e.Mood)
		}
		if len(e.Tags) > 0 {
			detail += "  tags: " + strings.Join(e.Tags, ", ")
		}
		cmd.Printf("      %s\n", mutedStyle.Render(detail))
	}
	cmd.Printf("\nTotal: %d entries\n", len(entries))
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	entry, err := journalService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	if entry.Title != "" {
		cmd.Println(headerStyle.Render(entry.Title))
	}
	cmd.Println(mutedStyle.Render(entry.CreatedAt.Format("Monday, 2 January 2006 15:04")))
	if entry.Mood != "" {
		cmd.Printf("%s\n", mutedStyle.Render("mood: "+string(entry.Mood)))
	}
	if len(entry.Tags) > 0 {
		cmd.Printf("%s\n", mutedStyle.Render("tags: "+strings.Join(entry.Tags, ", ")))
	}
	cmd.Println()
	cmd.Println(entry.Content)
	return nil
}

func runJournalRm(cmd *cobra.Command, args []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	if err := journalService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove entry: %w", err)
	}

	cmd.Printf("Entry %s removed.\n", args[0])
	return nil
}

func runJournalFavorite(cmd *cobra.Command, args []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	entry, err := journalService.ToggleFavorite(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to toggle favourite: %w", err)
	}

	if entry.IsFavorite {
		cmd.Printf("Entry %s marked as favourite.\n", entry.ID)
	} else {
		cmd.Printf("Entry %s is no longer a favourite.\n", entry.ID)
	}
	return nil
}

func runJournalImport(cmd *cobra.Command, args []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	dir := args[0]
	importer := importfs.NewImporter(journalService)

	if !journalWatch {
		imported, err := importer.ImportDir(context.Background(), dir)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		cmd.Printf("Imported %d entries from %s\n", len(imported), dir)
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	results, err := importer.Watch(ctx, dir)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	cmd.Printf("Watching %s for journal files. Press Ctrl+C to stop.\n", dir)
	for res := range results {
		if res.Err != nil {
			cmd.Printf("  skipped %s: %v\n", res.Path, res.Err)
			continue
		}
		cmd.Printf("  imported %s as entry %s\n", res.Path, res.Entry.ID)
	}

	return nil
}
