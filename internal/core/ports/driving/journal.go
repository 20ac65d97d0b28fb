package driving

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// JournalService manages journal entries.
type JournalService interface {
	// Add validates and stores a new entry, returning it with an ID
	// and a computed word count.
	Add(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// Get retrieves an entry by ID and increments its read count.
	Get(ctx context.Context, id string) (*domain.JournalEntry, error)

	// Update stores a modified entry, recomputing its word count.
	Update(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// List returns entries, optionally filtered by tag, newest first.
	List(ctx context.Context, tag string) ([]domain.JournalEntry, error)

	// Delete removes an entry and its index entry.
	Delete(ctx context.Context, id string) error

	// ToggleFavorite flips an entry's favourite flag.
	ToggleFavorite(ctx context.Context, id string) (*domain.JournalEntry, error)
}
