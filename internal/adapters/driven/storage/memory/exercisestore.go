package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
)

// Ensure ExerciseStore implements the interface.
var _ driven.ExerciseStore = (*ExerciseStore)(nil)

// ExerciseStore is an in-memory implementation of driven.ExerciseStore.
type ExerciseStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.ExerciseSession
}

// NewExerciseStore creates a new in-memory exercise store.
func NewExerciseStore() *ExerciseStore {
	return &ExerciseStore{
		sessions: make(map[string]domain.ExerciseSession),
	}
}

// SaveSession records a completed exercise session.
func (s *ExerciseStore) SaveSession(_ context.Context, session *domain.ExerciseSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

// ListSessions returns sessions, most recent first.
func (s *ExerciseStore) ListSessions(_ context.Context, exerciseID string) ([]domain.ExerciseSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.ExerciseSession
	for id := range s.sessions {
		session := s.sessions[id]
		if exerciseID != "" && session.ExerciseID != exerciseID {
			continue
		}
		result = append(result, session)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CompletedAt.Equal(result[j].CompletedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CompletedAt.After(result[j].CompletedAt)
	})
	return result, nil
}

// CountSessions returns the number of recorded sessions.
func (s *ExerciseStore) CountSessions(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}
