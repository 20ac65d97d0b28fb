package driving

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// ProgressService computes activity statistics and achievements.
type ProgressService interface {
	// Stats aggregates the user's activity counters.
	Stats(ctx context.Context) (*domain.ProgressStats, error)

	// Achievements returns the catalogue with unlock state resolved
	// against current stats.
	Achievements(ctx context.Context) ([]domain.Achievement, error)
}
