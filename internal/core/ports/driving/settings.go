package driving

import (
	"context"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// SettingsService manages typed application settings.
type SettingsService interface {
	// Get returns the current settings, with defaults applied.
	Get(ctx context.Context) (*domain.Settings, error)

	// Update validates and persists new settings.
	Update(ctx context.Context, settings domain.Settings) error

	// Reset restores default settings.
	Reset(ctx context.Context) error
}
