package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
)

// Ensure JournalStore implements the interface.
var _ driven.JournalStore = (*JournalStore)(nil)

// JournalStore is an in-memory implementation of driven.JournalStore.
type JournalStore struct {
	mu      sync.RWMutex
	entries map[string]domain.JournalEntry
}

// NewJournalStore creates a new in-memory journal store.
func NewJournalStore() *JournalStore {
	return &JournalStore{
		entries: make(map[string]domain.JournalEntry),
	}
}

// SaveEntry stores or updates a journal entry.
func (s *JournalStore) SaveEntry(_ context.Context, entry *domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *entry
	stored.Tags = slices.Clone(entry.Tags)
	s.entries[entry.ID] = stored
	return nil
}

// GetEntry retrieves an entry by ID.
func (s *JournalStore) GetEntry(_ context.Context, id string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	entry.Tags = slices.Clone(entry.Tags)
	return &entry, nil
}

// DeleteEntry removes an entry.
func (s *JournalStore) DeleteEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

// ListEntries returns entries ordered by creation time descending,
// optionally filtered by tag.
func (s *JournalStore) ListEntries(_ context.Context, tag string) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.JournalEntry
	for id := range s.entries {
		entry := s.entries[id]
		if tag != "" && !slices.Contains(entry.Tags, tag) {
			continue
		}
		entry.Tags = slices.Clone(entry.Tags)
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// CountEntries returns the number of stored entries.
func (s *JournalStore) CountEntries(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
