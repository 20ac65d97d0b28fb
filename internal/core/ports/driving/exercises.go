package driving

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// ExerciseService exposes the guided exercise catalogue and completions.
type ExerciseService interface {
	// List returns the exercise catalogue.
	List(ctx context.Context) ([]domain.Exercise, error)

	// Get retrieves one exercise by ID.
	Get(ctx context.Context, id string) (*domain.Exercise, error)

	// Complete records a finished session for an exercise.
	Complete(ctx context.Context, exerciseID, notes string) (*domain.ExerciseSession, error)

	// Sessions returns recorded sessions, most recent first.
	Sessions(ctx context.Context, exerciseID string) ([]domain.ExerciseSession, error)
}
