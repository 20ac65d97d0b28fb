package driving

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// ReminderScheduler runs the recurring reminder loop.
type ReminderScheduler interface {
	// Start begins the scheduler loop. Blocks until Stop is called or
	// the context is cancelled.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the scheduler.
	Stop() error

	// List returns all reminders with their schedule state.
	List(ctx context.Context) ([]domain.Reminder, error)

	// SetEnabled enables or disables a reminder.
	SetEnabled(ctx context.Context, id string, enabled bool) error

	// RunNow fires a reminder immediately, regardless of schedule.
	RunNow(ctx context.Context, id string) error
}
