package domain

import "time"

// Metric identifies a counted quantity that achievements are measured
// against.
type Metric string

// Achievement metrics.
const (
	MetricEntriesWritten     Metric = "entries-written"
	MetricQuotesRead         Metric = "quotes-read"
	MetricExercisesCompleted Metric = "exercises-completed"
	MetricJournalStreak      Metric = "journal-streak"
	MetricTotalWords         Metric = "total-words"
)

// Achievement is a milestone unlocked by reaching a metric threshold.
type Achievement struct {
	// ID is the unique identifier for the achievement.
	ID string

	// Name is the display name.
	Name string

	// Description explains how the achievement is earned.
	Description string

	// Metric is the quantity measured.
	Metric Metric

	// Threshold is the metric value at which the achievement unlocks.
	Threshold int

	// UnlockedAt is when the achievement was earned, nil while locked.
	UnlockedAt *time.Time
}

// Unlocked reports whether the achievement has been earned.
func (a Achievement) Unlocked() bool { return a.UnlockedAt != nil }

// ProgressStats aggregates the user's activity counters.
type ProgressStats struct {
	// EntriesWritten is the total number of journal entries.
	EntriesWritten int

	// QuotesRead is the sum of quote read counts.
	QuotesRead int

	// ExercisesCompleted is the number of recorded exercise sessions.
	ExercisesCompleted int

	// FavoriteCount is the number of favourited quotes and entries.
	FavoriteCount int

	// JournalStreakDays is the current run of consecutive days with at
	// least one journal entry, counting back from today or yesterday.
	JournalStreakDays int

	// TotalWords is the sum of journal entry word counts.
	TotalWords int
}

// Value returns the stat counter for a metric.
func (s ProgressStats) Value(m Metric) int {
	switch m {
	case MetricEntriesWritten:
		return s.EntriesWritten
	case MetricQuotesRead:
		return s.QuotesRead
	case MetricExercisesCompleted:
		return s.ExercisesCompleted
	case MetricJournalStreak:
		return s.JournalStreakDays
	case MetricTotalWords:
		return s.TotalWords
	default:
		return 0
	}
}

// BuiltinAchievements returns the achievement catalogue, all locked.
func BuiltinAchievements() []Achievement {
	return []Achievement{
		{ID: "first-entry", Name: "First Words", Description: "Write your first journal entry.", Metric: MetricEntriesWritten, Threshold: 1},
		{ID: "ten-entries", Name: "Finding a Rhythm", Description: "Write ten journal entries.", Metric: MetricEntriesWritten, Threshold: 10},
		{ID: "hundred-entries", Name: "Chronicler", Description: "Write one hundred journal entries.", Metric: MetricEntriesWritten, Threshold: 100},
		{ID: "week-streak", Name: "Seven Days", Description: "Journal seven days in a row.", Metric: MetricJournalStreak, Threshold: 7},
		{ID: "month-streak", Name: "Thirty Days", Description: "Journal thirty days in a row.", Metric: MetricJournalStreak, Threshold: 30},
		{ID: "reader-50", Name: "Well Read", Description: "Read fifty quotes.", Metric: MetricQuotesRead, Threshold: 50},
		{ID: "first-exercise", Name: "Deep Breath", Description: "Complete your first exercise.", Metric: MetricExercisesCompleted, Threshold: 1},
		{ID: "exercise-25", Name: "Practised Calm", Description: "Complete twenty-five exercises.", Metric: MetricExercisesCompleted, Threshold: 25},
		{ID: "words-10k", Name: "Ten Thousand Words", Description: "Write ten thousand words in total.", Metric: MetricTotalWords, Threshold: 10000},
	}
}
