package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/solace-labs/solace-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive search interface.

Type to search across quotes and journal entries, navigate results,
and open them in a detail view.

Controls:
  ↑/↓      - Navigate results
  Enter    - Search / Open result
  Esc      - Back / Clear
  q        - Quit (from the result list)`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Recover with a stack trace so TUI panics are diagnosable.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Reminders fire in the background while the TUI is open.
	if reminderScheduler != nil && remindersEnabled() {
		schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
		defer schedulerCancel()

		go func() {
			err := reminderScheduler.Start(schedulerCtx)
			if err != nil && !errors.Is(err, context.Canceled) {
				fmt.Fprintf(os.Stderr, "scheduler stopped: %v\n", err)
			}
		}()

		defer func() {
			if err := reminderScheduler.Stop(); err != nil {
				fmt.Fprintf(os.Stderr, "scheduler stop error: %v\n", err)
			}
		}()
	}

	app, err := tui.NewApp(&tui.Ports{
		Search:  searchService,
		Quotes:  quoteService,
		Journal: journalService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// remindersEnabled checks the scheduler master switch.
func remindersEnabled() bool {
	if settingsService == nil {
		return true
	}
	settings, err := settingsService.Get(context.Background())
	if err != nil {
		return true
	}
	return settings.Reminders.Enabled
}
