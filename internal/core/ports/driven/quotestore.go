package driven

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// QuoteStore persists quotes.
// Backed by SQLite for local storage.
type QuoteStore interface {
	// SaveQuote stores or updates a quote.
	SaveQuote(ctx context.Context, quote *domain.Quote) error

	// GetQuote retrieves a quote by ID.
	GetQuote(ctx context.Context, id string) (*domain.Quote, error)

	// DeleteQuote removes a quote.
	DeleteQuote(ctx context.Context, id string) error

	// ListQuotes returns all quotes, optionally filtered by category.
	// An empty category returns everything.
	ListQuotes(ctx context.Context, category string) ([]domain.Quote, error)

	// CountQuotes returns the number of stored quotes.
	CountQuotes(ctx context.Context) (int, error)
}
