package domain

import "time"

// ReminderKind identifies what a reminder delivers.
type ReminderKind string

// Reminder kinds.
const (
	// ReminderDailyQuote delivers a quote from the library.
	ReminderDailyQuote ReminderKind = "daily-quote"

	// ReminderJournalPrompt nudges the user to write an entry.
	ReminderJournalPrompt ReminderKind = "journal-prompt"
)

// Reminder is a recurring scheduled notification.
type Reminder struct {
	// ID is the unique identifier for the reminder.
	ID string

	// Name is a human-readable name.
	Name string

	// Kind determines what is delivered when the reminder fires.
	Kind ReminderKind

	// Interval defines how often the reminder fires.
	Interval time.Duration

	// LastRun is when the reminder last fired.
	LastRun time.Time

	// NextRun is when the reminder should fire next.
	NextRun time.Time

	// LastError contains the last delivery error message, if any.
	LastError string

	// LastSuccess is when the reminder last delivered successfully.
	LastSuccess time.Time

	// Enabled indicates whether the reminder is active.
	Enabled bool
}

// ReminderResult records the outcome of one reminder delivery.
type ReminderResult struct {
	// ReminderID identifies which reminder fired.
	ReminderID string

	// StartedAt is when delivery started.
	StartedAt time.Time

	// EndedAt is when delivery completed.
	EndedAt time.Time

	// Success indicates whether delivery completed without error.
	Success bool

	// Error contains the error message if Success is false.
	Error string
}

// ReminderConfig holds per-kind reminder configuration.
type ReminderConfig struct {
	// Enabled is the master switch for the scheduler.
	Enabled bool

	// Kinds holds per-kind configuration.
	Kinds map[ReminderKind]ReminderKindConfig
}

// ReminderKindConfig configures a single reminder kind.
type ReminderKindConfig struct {
	// Enabled indicates whether this reminder should fire.
	Enabled bool

	// Interval defines how often the reminder fires.
	Interval time.Duration
}

// KindConfig returns the configuration for a reminder kind.
// Returns a zero config if the kind is not configured.
func (c *ReminderConfig) KindConfig(kind ReminderKind) ReminderKindConfig {
	if c.Kinds == nil {
		return ReminderKindConfig{}
	}
	return c.Kinds[kind]
}

// DefaultReminderConfig returns sensible defaults for the scheduler.
func DefaultReminderConfig() ReminderConfig {
	return ReminderConfig{
		Enabled: true,
		Kinds: map[ReminderKind]ReminderKindConfig{
			ReminderDailyQuote: {
				Enabled:  true,
				Interval: 24 * time.Hour,
			},
			ReminderJournalPrompt: {
				Enabled:  true,
				Interval: 24 * time.Hour,
			},
		},
	}
}

// Notification is the payload handed to the delivery boundary when a
// reminder fires.
type Notification struct {
	// Title is the short headline.
	Title string

	// Body is the notification text.
	Body string

	// Kind is the reminder kind that produced the notification.
	Kind ReminderKind
}
