package cli

import (
	"context"
	"errors"

	"github.com/solace-labs/solace-cli/internal/adapters/driven/storage/memory"
	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/services"
)

// setupTestServices wires the commands to real services over in-memory
// stores and returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	prev := Services{
		Quotes:    quoteService,
		Journal:   journalService,
		Exercises: exerciseService,
		Progress:  progressService,
		Search:    searchService,
		Reminders: reminderScheduler,
		Settings:  settingsService,
		Backup:    backupService,
	}

	quoteStore := memory.NewQuoteStore()
	journalStore := memory.NewJournalStore()
	exerciseStore := memory.NewExerciseStore()
	reminderStore := memory.NewReminderStore()
	configStore := memory.NewConfigStore()

	quotes := services.NewQuoteService(quoteStore, nil)
	journal := services.NewJournalService(journalStore, nil)

	seedTestData(quotes, journal)

	SetServices(Services{
		Quotes:    quotes,
		Journal:   journal,
		Exercises: services.NewExerciseService(exerciseStore),
		Progress:  services.NewProgressService(quoteStore, journalStore, exerciseStore),
		Search:    services.NewSearchService(quoteStore, journalStore, nil),
		Reminders: services.NewReminderScheduler(domain.DefaultReminderConfig(), reminderStore, &noopNotifier{}, quotes),
		Settings:  services.NewSettingsService(configStore),
		Backup:    services.NewBackupService(quoteStore, journalStore, exerciseStore, nil),
	})

	return func() { SetServices(prev) }
}

func seedTestData(quotes *services.QuoteService, journal *services.JournalService) {
	ctx := context.Background()

	//nolint:errcheck // Seeding known-valid fixtures
	quotes.Add(ctx, domain.Quote{
		ID:       "q-1",
		Text:     "Hope is the thing with feathers.",
		Author:   "Emily Dickinson",
		Category: "hope",
	})
	//nolint:errcheck // Seeding known-valid fixtures
	journal.Add(ctx, domain.JournalEntry{
		ID:      "e-1",
		Title:   "Morning pages",
		Content: "Woke up early and full of hope for the day.",
		Mood:    domain.MoodGood,
		Tags:    []string{"mornings"},
	})
}

type noopNotifier struct{}

func (n *noopNotifier) Notify(context.Context, domain.Notification) error { return nil }

// mockSearchServiceError always fails, for error-path tests.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(context.Context, string, domain.SearchOptions) ([]domain.SearchResult, error) {
	return nil, errors.New("boom")
}
