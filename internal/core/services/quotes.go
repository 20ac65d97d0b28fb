package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
	"github.com/solace-labs/solace-cli/internal/logger"
)

// Ensure QuoteService implements the interface.
var _ driving.QuoteService = (*QuoteService)(nil)

// QuoteService manages the quote library and keeps the search index in
// step with the store.
type QuoteService struct {
	store driven.QuoteStore
	index driven.SearchIndex // optional
}

// NewQuoteService creates a quote service. index may be nil.
func NewQuoteService(store driven.QuoteStore, index driven.SearchIndex) *QuoteService {
	return &QuoteService{store: store, index: index}
}

// Add validates and stores a new quote.
func (s *QuoteService) Add(ctx context.Context, quote domain.Quote) (*domain.Quote, error) {
	if err := quote.Validate(); err != nil {
		return nil, err
	}

	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	if err := s.store.SaveQuote(ctx, &quote); err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}
	s.reindex(ctx, quote)

	logger.Debug("Added quote %s", quote.ID)
	return &quote, nil
}

// Get retrieves a quote by ID.
func (s *QuoteService) Get(ctx context.Context, id string) (*domain.Quote, error) {
	return s.store.GetQuote(ctx, id)
}

// List returns quotes, optionally filtered by category.
func (s *QuoteService) List(ctx context.Context, category string) ([]domain.Quote, error) {
	return s.store.ListQuotes(ctx, category)
}

// Delete removes a quote and its index entry.
func (s *QuoteService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteQuote(ctx, id); err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if s.index != nil {
		if err := s.index.DeleteQuote(ctx, id); err != nil {
			logger.Warn("Failed to remove quote %s from index: %v", id, err)
		}
	}
	return nil
}

// Random returns a random quote and increments its read count.
func (s *QuoteService) Random(ctx context.Context) (*domain.Quote, error) {
	quotes, err := s.store.ListQuotes(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	if len(quotes) == 0 {
		return nil, domain.ErrEmptyLibrary
	}

	pick := quotes[rand.Intn(len(quotes))] //nolint:gosec // not security sensitive
	return s.MarkRead(ctx, pick.ID)
}

// MarkRead increments a quote's read count.
func (s *QuoteService) MarkRead(ctx context.Context, id string) (*domain.Quote, error) {
	quote, err := s.store.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	quote.ReadCount++
	quote.UpdatedAt = time.Now().UTC()
	if err := s.store.SaveQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}
	s.reindex(ctx, *quote)
	return quote, nil
}

// ToggleFavorite flips a quote's favourite flag.
func (s *QuoteService) ToggleFavorite(ctx context.Context, id string) (*domain.Quote, error) {
	quote, err := s.store.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	quote.IsFavorite = !quote.IsFavorite
	quote.UpdatedAt = time.Now().UTC()
	if err := s.store.SaveQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}
	s.reindex(ctx, *quote)
	return quote, nil
}

// reindex writes the quote through to the search index. Index failures
// are logged, not returned: the store remains the source of truth and
// the search layer degrades to in-memory ranking.
func (s *QuoteService) reindex(ctx context.Context, quote domain.Quote) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexQuote(ctx, quote); err != nil {
		logger.Warn("Failed to index quote %s: %v", quote.ID, err)
	}
}
