package driven

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// SearchIndex provides full-text search operations.
// Backed by SQLite FTS5 for BM25-ranked keyword search.
type SearchIndex interface {
	// IndexQuote adds or updates a quote in the index.
	IndexQuote(ctx context.Context, quote domain.Quote) error

	// IndexEntry adds or updates a journal entry in the index.
	IndexEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteQuote removes a quote from the index.
	DeleteQuote(ctx context.Context, id string) error

	// DeleteEntry removes a journal entry from the index.
	DeleteEntry(ctx context.Context, id string) error

	// Search performs a prefix-match keyword search and returns
	// matching record IDs with scores, best first.
	Search(ctx context.Context, query string, scope domain.SearchScope, limit int) ([]IndexHit, error)

	// Rebuild drops and re-creates the index contents from the stores.
	Rebuild(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// IndexHit represents a search result from the index.
type IndexHit struct {
	// Kind identifies whether the hit is a quote or a journal entry.
	Kind domain.ResultKind

	// ID is the matched record.
	ID string

	// Score is the relevance score (BM25; higher is better).
	Score float64
}
