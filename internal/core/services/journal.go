package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
	"github.com/solace-labs/solace-cli/internal/logger"
	"github.com/solace-labs/solace-cli/internal/textnorm"
)

// Ensure JournalService implements the interface.
var _ driving.JournalService = (*JournalService)(nil)

// JournalService manages journal entries and keeps the search index in
// step with the store.
type JournalService struct {
	store driven.JournalStore
	index driven.SearchIndex // optional
}

// NewJournalService creates a journal service. index may be nil.
func NewJournalService(store driven.JournalStore, index driven.SearchIndex) *JournalService {
	return &JournalService{store: store, index: index}
}

// Add validates and stores a new entry.
func (s *JournalService) Add(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.NormalizeTags()
	entry.WordCount = textnorm.WordCount(entry.Content)
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	if err := s.store.SaveEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	s.reindex(ctx, entry)

	logger.Debug("Added journal entry %s (%d words)", entry.ID, entry.WordCount)
	return &entry, nil
}

// Get retrieves an entry and increments its read count.
func (s *JournalService) Get(ctx context.Context, id string) (*domain.JournalEntry, error) {
	entry, err := s.store.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.ReadCount++
	if err := s.store.SaveEntry(ctx, entry); err != nil {
		// Reading must still succeed if the count bump fails.
		logger.Warn("Failed to bump read count for entry %s: %v", id, err)
	} else {
		s.reindex(ctx, *entry)
	}
	return entry, nil
}

// Update stores a modified entry, recomputing its word count.
func (s *JournalService) Update(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.store.GetEntry(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	entry.NormalizeTags()
	entry.WordCount = textnorm.WordCount(entry.Content)
	entry.CreatedAt = existing.CreatedAt
	entry.ReadCount = existing.ReadCount
	entry.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	s.reindex(ctx, entry)
	return &entry, nil
}

// List returns entries, optionally filtered by tag, newest first.
func (s *JournalService) List(ctx context.Context, tag string) ([]domain.JournalEntry, error) {
	return s.store.ListEntries(ctx, tag)
}

// Delete removes an entry and its index entry.
func (s *JournalService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if s.index != nil {
		if err := s.index.DeleteEntry(ctx, id); err != nil {
			logger.Warn("Failed to remove entry %s from index: %v", id, err)
		}
	}
	return nil
}

// ToggleFavorite flips an entry's favourite flag.
func (s *JournalService) ToggleFavorite(ctx context.Context, id string) (*domain.JournalEntry, error) {
	entry, err := s.store.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.IsFavorite = !entry.IsFavorite
	entry.UpdatedAt = time.Now().UTC()
	if err := s.store.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	s.reindex(ctx, *entry)
	return entry, nil
}

// reindex writes the entry through to the search index. Index failures
// are logged, not returned.
func (s *JournalService) reindex(ctx context.Context, entry domain.JournalEntry) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexEntry(ctx, entry); err != nil {
		logger.Warn("Failed to index entry %s: %v", entry.ID, err)
	}
}
