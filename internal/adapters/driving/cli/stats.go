package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show activity statistics",
	RunE:  runStats,
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements and their unlock state",
	RunE:  runAchievements,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if progressService == nil {
		return errors.New("progress service not configured")
	}

	stats, err := progressService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	cmd.Println(headerStyle.Render("Your Progress"))
	cmd.Println()
	cmd.Printf("  Journal entries:      %d\n", stats.EntriesWritten)
	cmd.Printf("  Words written:        %d\n", stats.TotalWords)
	cmd.Printf("  Journal streak:       %d days\n", stats.JournalStreakDays)
	cmd.Printf("  Quotes read:          %d\n", stats.QuotesRead)
	cmd.Printf("  Exercises completed:  %d\n", stats.ExercisesCompleted)
	cmd.Printf("  Favourites:           %d\n", stats.FavoriteCount)
	return nil
}

func runAchievements(cmd *cobra.Command, _ []string) error {
	if progressService == nil {
		return errors.New("progress service not configured")
	}

	achievements, err := progressService.Achievements(context.Background())
	if err != nil {
		return fmt.Errorf("failed to resolve achievements: %w", err)
	}

	unlocked := 0
	cmd.Println(headerStyle.Render("Achievements"))
	cmd.Println()
	for i := range achievements {
		a := &achievements[i]
		if a.Unlocked() {
			unlocked++
			cmd.Printf("  %s %s\n", favoriteStyle.Render(favoriteMark), a.Name)
			cmd.Printf("      %s\n", mutedStyle.Render(
				fmt.Sprintf("%s (unlocked %s)", a.Description, a.UnlockedAt.Format("2 Jan 2006"))))
		} else {
			cmd.Printf("    %s\n", mutedStyle.Render(a.Name))
			cmd.Printf("      %s\n", mutedStyle.Render(a.Description))
		}
	}
	cmd.Printf("\nUnlocked %d of %d.\n", unlocked, len(achievements))
	return nil
}
