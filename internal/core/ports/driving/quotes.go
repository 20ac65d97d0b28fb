package driving

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// QuoteService manages the quote library.
type QuoteService interface {
	// Add validates and stores a new quote, returning it with an ID.
	Add(ctx context.Context, quote domain.Quote) (*domain.Quote, error)

	// Get retrieves a quote by ID.
	Get(ctx context.Context, id string) (*domain.Quote, error)

	// List returns quotes, optionally filtered by category.
	List(ctx context.Context, category string) ([]domain.Quote, error)

	// Delete removes a quote and its index entry.
	Delete(ctx context.Context, id string) error

	// Random returns a random quote and increments its read count.
	Random(ctx context.Context) (*domain.Quote, error)

	// MarkRead increments a quote's read count.
	MarkRead(ctx context.Context, id string) (*domain.Quote, error)

	// ToggleFavorite flips a quote's favourite flag.
	ToggleFavorite(ctx context.Context, id string) (*domain.Quote, error)
}
