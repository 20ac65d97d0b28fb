package driven

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// ReminderStore persists reminder state for crash recovery.
// It stores reminder schedules and delivery history.
type ReminderStore interface {
	// GetReminder retrieves a reminder by ID.
	// Returns nil and no error if the reminder does not exist.
	GetReminder(ctx context.Context, id string) (*domain.Reminder, error)

	// ListReminders returns all reminders.
	ListReminders(ctx context.Context) ([]domain.Reminder, error)

	// SaveReminder persists a reminder's state.
	// Creates or updates based on ID.
	SaveReminder(ctx context.Context, reminder *domain.Reminder) error

	// DeleteReminder removes a reminder from storage.
	DeleteReminder(ctx context.Context, id string) error

	// RecordResult logs a delivery result.
	RecordResult(ctx context.Context, result *domain.ReminderResult) error

	// GetHistory returns recent results for a reminder, most recent first.
	GetHistory(ctx context.Context, reminderID string, limit int) ([]domain.ReminderResult, error)

	// PruneHistory removes old results beyond the retention limit.
	// Keeps the most recent 'keep' results per reminder.
	PruneHistory(ctx context.Context, keep int) error
}
