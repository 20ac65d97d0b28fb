// Command solace is a local-first companion for quotes, journaling,
// and guided exercises. All wiring between adapters and core services
// happens here.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/solace-labs/solace-cli/internal/adapters/driven/config/file"
	"github.com/solace-labs/solace-cli/internal/adapters/driven/notify/console"
	"github.com/solace-labs/solace-cli/internal/adapters/driven/storage/sqlite"
	"github.com/solace-labs/solace-cli/internal/adapters/driving/cli"
	"github.com/solace-labs/solace-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	index := store.SearchIndex()

	quoteService := services.NewQuoteService(store.QuoteStore(), index)
	journalService := services.NewJournalService(store.JournalStore(), index)
	exerciseService := services.NewExerciseService(store.ExerciseStore())
	progressService := services.NewProgressService(
		store.QuoteStore(), store.JournalStore(), store.ExerciseStore())

	searchService := services.NewSearchService(store.QuoteStore(), store.JournalStore(), index)
	searchService.SetAvgDocLengths(settings.QuoteAvgDocLength, settings.JournalAvgDocLength)
	searchService.SetDefaultLimit(settings.SearchLimit)

	reminderScheduler := services.NewReminderScheduler(
		settings.Reminders, store.ReminderStore(), console.NewNotifier(), quoteService)

	backupService := services.NewBackupService(
		store.QuoteStore(), store.JournalStore(), store.ExerciseStore(), index)

	cli.SetServices(cli.Services{
		Quotes:    quoteService,
		Journal:   journalService,
		Exercises: exerciseService,
		Progress:  progressService,
		Search:    searchService,
		Reminders: reminderScheduler,
		Settings:  settingsService,
		Backup:    backupService,
	})

	cli.Execute()
	return nil
}
