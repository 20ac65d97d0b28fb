package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
)

// Ensure QuoteStore implements the interface.
var _ driven.QuoteStore = (*QuoteStore)(nil)

// QuoteStore is an in-memory implementation of driven.QuoteStore.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]domain.Quote
}

// NewQuoteStore creates a new in-memory quote store.
func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		quotes: make(map[string]domain.Quote),
	}
}

// SaveQuote stores or updates a quote.
func (s *QuoteStore) SaveQuote(_ context.Context, quote *domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[quote.ID] = *quote
	return nil
}

// GetQuote retrieves a quote by ID.
func (s *QuoteStore) GetQuote(_ context.Context, id string) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quote, ok := s.quotes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &quote, nil
}

// DeleteQuote removes a quote.
func (s *QuoteStore) DeleteQuote(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.quotes, id)
	return nil
}

// ListQuotes returns all quotes, optionally filtered by category.
func (s *QuoteStore) ListQuotes(_ context.Context, category string) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Quote
	for id := range s.quotes {
		quote := s.quotes[id]
		if category != "" && quote.Category != category {
			continue
		}
		result = append(result, quote)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// CountQuotes returns the number of stored quotes.
func (s *QuoteStore) CountQuotes(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quotes), nil
}
