package services

import (
	"context"
	"fmt"
	"time"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataDir            = "data.dir"
	keySearchLimit        = "search.limit"
	keyQuoteAvgDocLen     = "search.quote_avg_doc_length"
	keyJournalAvgDocLen   = "search.journal_avg_doc_length"
	keyRemindersEnabled   = "reminders.enabled"
	keyDailyQuoteEnabled  = "reminders.daily_quote.enabled"
	keyDailyQuoteInterval = "reminders.daily_quote.interval_minutes"
	keyPromptEnabled      = "reminders.journal_prompt.enabled"
	keyPromptInterval     = "reminders.journal_prompt.interval_minutes"
)

// SettingsService manages typed application settings over the config
// store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the current settings with defaults applied for any key
// that is not set.
func (s *SettingsService) Get(_ context.Context) (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := defaults
	if dir := s.configStore.GetString(keyDataDir); dir != "" {
		settings.DataDir = dir
	}
	settings.SearchLimit = s.getInt(keySearchLimit, defaults.SearchLimit)
	settings.QuoteAvgDocLength = s.getFloat(keyQuoteAvgDocLen, defaults.QuoteAvgDocLength)
	settings.JournalAvgDocLength = s.getFloat(keyJournalAvgDocLen, defaults.JournalAvgDocLength)

	settings.Reminders = domain.ReminderConfig{
		Enabled: s.getBool(keyRemindersEnabled, defaults.Reminders.Enabled),
		Kinds: map[domain.ReminderKind]domain.ReminderKindConfig{
			domain.ReminderDailyQuote: {
				Enabled: s.getBool(keyDailyQuoteEnabled, true),
				Interval: s.getInterval(keyDailyQuoteInterval,
					defaults.Reminders.KindConfig(domain.ReminderDailyQuote).Interval),
			},
			domain.ReminderJournalPrompt: {
				Enabled: s.getBool(keyPromptEnabled, true),
				Interval: s.getInterval(keyPromptInterval,
					defaults.Reminders.KindConfig(domain.ReminderJournalPrompt).Interval),
			},
		},
	}

	return &settings, nil
}

// Update validates and persists new settings.
func (s *SettingsService) Update(_ context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	pairs := []struct {
		key   string
		value any
	}{
		{keyDataDir, settings.DataDir},
		{keySearchLimit, settings.SearchLimit},
		{keyQuoteAvgDocLen, settings.QuoteAvgDocLength},
		{keyJournalAvgDocLen, settings.JournalAvgDocLength},
		{keyRemindersEnabled, settings.Reminders.Enabled},
		{keyDailyQuoteEnabled, settings.Reminders.KindConfig(domain.ReminderDailyQuote).Enabled},
		{keyDailyQuoteInterval, int(settings.Reminders.KindConfig(domain.ReminderDailyQuote).Interval / time.Minute)},
		{keyPromptEnabled, settings.Reminders.KindConfig(domain.ReminderJournalPrompt).Enabled},
		{keyPromptInterval, int(settings.Reminders.KindConfig(domain.ReminderJournalPrompt).Interval / time.Minute)},
	}

	for _, p := range pairs {
		if err := s.configStore.Set(p.key, p.value); err != nil {
			return fmt.Errorf("save %s: %w", p.key, err)
		}
	}
	return nil
}

// Reset restores default settings.
func (s *SettingsService) Reset(ctx context.Context) error {
	return s.Update(ctx, domain.DefaultSettings())
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	if v := s.configStore.GetFloat(key); v > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getInterval(key string, fallback time.Duration) time.Duration {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	if minutes := s.configStore.GetInt(key); minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return fallback
}
