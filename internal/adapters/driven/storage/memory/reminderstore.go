package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
)

// Ensure ReminderStore implements the interface.
var _ driven.ReminderStore = (*ReminderStore)(nil)

// ReminderStore is an in-memory implementation of driven.ReminderStore.
type ReminderStore struct {
	mu        sync.RWMutex
	reminders map[string]domain.Reminder
	history   map[string][]domain.ReminderResult
}

// NewReminderStore creates a new in-memory reminder store.
func NewReminderStore() *ReminderStore {
	return &ReminderStore{
		reminders: make(map[string]domain.Reminder),
		history:   make(map[string][]domain.ReminderResult),
	}
}

// GetReminder retrieves a reminder by ID. Returns nil and no error
// when it does not exist.
func (s *ReminderStore) GetReminder(_ context.Context, id string) (*domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reminder, ok := s.reminders[id]
	if !ok {
		return nil, nil
	}
	return &reminder, nil
}

// ListReminders returns all reminders.
func (s *ReminderStore) ListReminders(_ context.Context) ([]domain.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Reminder
	for id := range s.reminders {
		result = append(result, s.reminders[id])
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// SaveReminder persists a reminder's state.
func (s *ReminderStore) SaveReminder(_ context.Context, reminder *domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders[reminder.ID] = *reminder
	return nil
}

// DeleteReminder removes a reminder and its history.
func (s *ReminderStore) DeleteReminder(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reminders, id)
	delete(s.history, id)
	return nil
}

// RecordResult logs a delivery result.
func (s *ReminderStore) RecordResult(_ context.Context, result *domain.ReminderResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[result.ReminderID] = append(s.history[result.ReminderID], *result)
	return nil
}

// GetHistory returns recent results for a reminder, most recent first.
func (s *ReminderStore) GetHistory(_ context.Context, reminderID string, limit int) ([]domain.ReminderResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := s.history[reminderID]
	out := make([]domain.ReminderResult, len(results))
	copy(out, results)
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PruneHistory keeps the most recent 'keep' results per reminder.
func (s *ReminderStore) PruneHistory(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, results := range s.history {
		if len(results) <= keep {
			continue
		}
		sort.Slice(results, func(i, j int) bool {
			return results[i].StartedAt.After(results[j].StartedAt)
		})
		s.history[id] = results[:keep]
	}
	return nil
}
