package driven

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// JournalStore persists journal entries.
type JournalStore interface {
	// SaveEntry stores or updates a journal entry.
	SaveEntry(ctx context.Context, entry *domain.JournalEntry) error

	// GetEntry retrieves an entry by ID.
	GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, id string) error

	// ListEntries returns all entries, optionally filtered by tag.
	// An empty tag returns everything. Entries are ordered by creation
	// time descending.
	ListEntries(ctx context.Context, tag string) ([]domain.JournalEntry, error)

	// CountEntries returns the number of stored entries.
	CountEntries(ctx context.Context) (int, error)
}
