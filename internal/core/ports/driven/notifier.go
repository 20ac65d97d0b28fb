package driven

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// Notifier delivers reminder notifications to the user.
// Implementations decide the channel (console, desktop, ...).
type Notifier interface {
	// Notify delivers a single notification.
	Notify(ctx context.Context, n domain.Notification) error
}
