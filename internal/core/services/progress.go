package services

import (
	"context"
	"fmt"
	"time"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
)

// Ensure ProgressService implements the interface.
var _ driving.ProgressService = (*ProgressService)(nil)

// ProgressService derives activity statistics and achievement state
// from the stores. Nothing is cached; on-device data volumes make a
// full pass per call cheap.
type ProgressService struct {
	quoteStore    driven.QuoteStore
	journalStore  driven.JournalStore
	exerciseStore driven.ExerciseStore

	// now is replaceable in tests.
	now func() time.Time
}

// NewProgressService creates a progress service.
func NewProgressService(
	quoteStore driven.QuoteStore,
	journalStore driven.JournalStore,
	exerciseStore driven.ExerciseStore,
) *ProgressService {
	return &ProgressService{
		quoteStore:    quoteStore,
		journalStore:  journalStore,
		exerciseStore: exerciseStore,
		now:           time.Now,
	}
}

// Stats aggregates the user's activity counters.
func (s *ProgressService) Stats(ctx context.Context) (*domain.ProgressStats, error) {
	quotes, err := s.quoteStore.ListQuotes(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	entries, err := s.journalStore.ListEntries(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	sessions, err := s.exerciseStore.CountSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	stats := &domain.ProgressStats{
		EntriesWritten:     len(entries),
		ExercisesCompleted: sessions,
	}

	for _, q := range quotes {
		stats.QuotesRead += q.ReadCount
		if q.IsFavorite {
			stats.FavoriteCount++
		}
	}
	for _, e := range entries {
		stats.TotalWords += e.WordCount
		if e.IsFavorite {
			stats.FavoriteCount++
		}
	}
	stats.JournalStreakDays = streakDays(entries, s.now())

	return stats, nil
}

// Achievements returns the catalogue with unlock state resolved against
// current stats.
func (s *ProgressService) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	achievements := domain.BuiltinAchievements()
	now := s.now().UTC()
	for i := range achievements {
		if stats.Value(achievements[i].Metric) >= achievements[i].Threshold {
			achievements[i].UnlockedAt = &now
		}
	}
	return achievements, nil
}

// streakDays counts consecutive days with at least one entry, walking
// back from today. A streak survives if the most recent entry was
// yesterday (today's entry may simply not be written yet).
func streakDays(entries []domain.JournalEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.CreatedAt.Local().Format("2006-01-02")] = true
	}

	day := now.Local()
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
		if !days[day.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
