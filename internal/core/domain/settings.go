package domain

import "fmt"

// Settings holds user-tunable application configuration.
type Settings struct {
	// DataDir is where the SQLite database lives.
	// Empty means the default (~/.solace/data).
	DataDir string

	// SearchLimit is the default maximum number of search results.
	SearchLimit int

	// QuoteAvgDocLength is the assumed average quote length in tokens,
	// used by the in-memory ranker.
	QuoteAvgDocLength float64

	// JournalAvgDocLength is the assumed average journal entry length
	// in tokens. Journal entries run much longer than quotes.
	JournalAvgDocLength float64

	// Reminders configures the reminder scheduler.
	Reminders ReminderConfig
}

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	return Settings{
		SearchLimit:         20,
		QuoteAvgDocLength:   50.0,
		JournalAvgDocLength: 250.0,
		Reminders:           DefaultReminderConfig(),
	}
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.SearchLimit <= 0 {
		return fmt.Errorf("%w: search limit must be positive", ErrInvalidInput)
	}
	if s.QuoteAvgDocLength <= 0 {
		return fmt.Errorf("%w: quote average document length must be positive", ErrInvalidInput)
	}
	if s.JournalAvgDocLength <= 0 {
		return fmt.Errorf("%w: journal average document length must be positive", ErrInvalidInput)
	}
	for kind, cfg := range s.Reminders.Kinds {
		if cfg.Enabled && cfg.Interval <= 0 {
			return fmt.Errorf("%w: reminder %q interval must be positive", ErrInvalidInput, kind)
		}
	}
	return nil
}
