package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
)

// Ensure ExerciseService implements the interface.
var _ driving.ExerciseService = (*ExerciseService)(nil)

// ExerciseService exposes the built-in exercise catalogue and records
// completions.
type ExerciseService struct {
	store     driven.ExerciseStore
	catalogue []domain.Exercise
}

// NewExerciseService creates an exercise service over the built-in
// catalogue.
func NewExerciseService(store driven.ExerciseStore) *ExerciseService {
	return &ExerciseService{
		store:     store,
		catalogue: domain.BuiltinExercises(),
	}
}

// List returns the exercise catalogue.
func (s *ExerciseService) List(_ context.Context) ([]domain.Exercise, error) {
	out := make([]domain.Exercise, len(s.catalogue))
	copy(out, s.catalogue)
	return out, nil
}

// Get retrieves one exercise by ID.
func (s *ExerciseService) Get(_ context.Context, id string) (*domain.Exercise, error) {
	for i := range s.catalogue {
		if s.catalogue[i].ID == id {
			ex := s.catalogue[i]
			return &ex, nil
		}
	}
	return nil, fmt.Errorf("exercise %q: %w", id, domain.ErrNotFound)
}

// Complete records a finished session for an exercise.
func (s *ExerciseService) Complete(ctx context.Context, exerciseID, notes string) (*domain.ExerciseSession, error) {
	if _, err := s.Get(ctx, exerciseID); err != nil {
		return nil, err
	}

	session := domain.ExerciseSession{
		ID:          uuid.NewString(),
		ExerciseID:  exerciseID,
		CompletedAt: time.Now().UTC(),
		Notes:       notes,
	}
	if err := s.store.SaveSession(ctx, &session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session, nil
}

// Sessions returns recorded sessions, most recent first.
func (s *ExerciseService) Sessions(ctx context.Context, exerciseID string) ([]domain.ExerciseSession, error) {
	return s.store.ListSessions(ctx, exerciseID)
}
