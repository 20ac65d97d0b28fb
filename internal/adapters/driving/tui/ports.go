// Package tui provides the interactive search interface for Solace.
// It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"errors"

	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
)

// ErrMissingSearchService indicates the TUI was built without a search
// service.
var ErrMissingSearchService = errors.New("search service is required")

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Search provides search capabilities. Required.
	Search driving.SearchService

	// Quotes marks quotes as read when opened. Optional.
	Quotes driving.QuoteService

	// Journal loads full entries when opened. Optional.
	Journal driving.JournalService
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
