package driven

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// ExerciseStore persists exercise completions. The exercise catalogue
// itself is built in; only sessions are stored.
type ExerciseStore interface {
	// SaveSession records a completed exercise session.
	SaveSession(ctx context.Context, session *domain.ExerciseSession) error

	// ListSessions returns sessions, most recent first. A non-empty
	// exerciseID filters to one exercise.
	ListSessions(ctx context.Context, exerciseID string) ([]domain.ExerciseSession, error)

	// CountSessions returns the number of recorded sessions.
	CountSessions(ctx context.Context) (int, error)
}
