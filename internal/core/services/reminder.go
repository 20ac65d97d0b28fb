package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
	"github.com/solace-labs/solace-cli/internal/logger"
)

// Ensure ReminderScheduler implements the interface.
var _ driving.ReminderScheduler = (*ReminderScheduler)(nil)

// historyKeep is how many delivery results are retained per reminder.
const historyKeep = 100

// journalPrompts are rotated through for journal-prompt reminders.
var journalPrompts = []string{
	"What is one thing you are grateful for today?",
	"What took up most of your attention today?",
	"Describe a moment today you want to remember.",
	"What would make tomorrow feel lighter?",
	"What did you learn about yourself this week?",
}

// ReminderScheduler runs the recurring reminder loop and delivers
// notifications through the Notifier.
type ReminderScheduler struct {
	config   domain.ReminderConfig
	store    driven.ReminderStore
	notifier driven.Notifier
	quotes   driving.QuoteService

	// limiter paces deliveries so a backlog of overdue reminders after
	// a long sleep does not burst out all at once.
	limiter *rate.Limiter

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewReminderScheduler creates a scheduler with configuration.
func NewReminderScheduler(
	config domain.ReminderConfig,
	store driven.ReminderStore,
	notifier driven.Notifier,
	quotes driving.QuoteService,
) *ReminderScheduler {
	return &ReminderScheduler{
		config:   config,
		store:    store,
		notifier: notifier,
		quotes:   quotes,
		limiter:  rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Start begins the scheduler loop. This method blocks until Stop is
// called or the context is cancelled.
func (s *ReminderScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return domain.ErrReminderRunning
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	if err := s.initialiseReminders(ctx); err != nil {
		logger.Warn("Failed to initialise reminders: %v", err)
	}

	return s.run(ctx)
}

// Stop gracefully shuts down the scheduler.
func (s *ReminderScheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	// Wait for in-flight deliveries to complete.
	s.wg.Wait()
	return nil
}

// List returns all reminders with their schedule state.
func (s *ReminderScheduler) List(ctx context.Context) ([]domain.Reminder, error) {
	return s.store.ListReminders(ctx)
}

// SetEnabled enables or disables a reminder.
func (s *ReminderScheduler) SetEnabled(ctx context.Context, id string, enabled bool) error {
	reminder, err := s.store.GetReminder(ctx, id)
	if err != nil {
		return err
	}
	if reminder == nil {
		return fmt.Errorf("reminder %q: %w", id, domain.ErrNotFound)
	}

	reminder.Enabled = enabled
	if enabled && reminder.NextRun.IsZero() {
		reminder.NextRun = time.Now().Add(reminder.Interval)
	}
	return s.store.SaveReminder(ctx, reminder)
}

// RunNow fires a reminder immediately, regardless of schedule.
func (s *ReminderScheduler) RunNow(ctx context.Context, id string) error {
	reminder, err := s.store.GetReminder(ctx, id)
	if err != nil {
		return err
	}
	if reminder == nil {
		return fmt.Errorf("reminder %q: %w", id, domain.ErrNotFound)
	}
	return s.deliver(ctx, reminder)
}

// initialiseReminders ensures all configured reminders exist in the store.
func (s *ReminderScheduler) initialiseReminders(ctx context.Context) error {
	kinds := []struct {
		kind domain.ReminderKind
		name string
	}{
		{domain.ReminderDailyQuote, "Daily Quote"},
		{domain.ReminderJournalPrompt, "Journal Prompt"},
	}

	for _, k := range kinds {
		cfg := s.config.KindConfig(k.kind)
		if !cfg.Enabled {
			continue
		}
		if err := s.ensureReminder(ctx, k.kind, k.name, cfg); err != nil {
			return err
		}
	}
	return nil
}

// ensureReminder creates or updates a reminder in the store.
func (s *ReminderScheduler) ensureReminder(
	ctx context.Context, kind domain.ReminderKind, name string, cfg domain.ReminderKindConfig,
) error {
	id := string(kind)
	reminder, err := s.store.GetReminder(ctx, id)
	if err != nil {
		return err
	}

	if reminder == nil {
		reminder = &domain.Reminder{
			ID:       id,
			Name:     name,
			Kind:     kind,
			Interval: cfg.Interval,
			Enabled:  cfg.Enabled,
			NextRun:  time.Now().Add(cfg.Interval),
		}
	} else {
		if reminder.Interval != cfg.Interval {
			reminder.Interval = cfg.Interval
			reminder.NextRun = time.Now().Add(cfg.Interval)
		}
		reminder.Enabled = cfg.Enabled
	}

	return s.store.SaveReminder(ctx, reminder)
}

// run is the main scheduler loop.
func (s *ReminderScheduler) run(ctx context.Context) error {
	s.checkAndDeliverDue(ctx)

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.checkAndDeliverDue(ctx)
		}
	}
}

// checkAndDeliverDue finds and delivers reminders that are due.
func (s *ReminderScheduler) checkAndDeliverDue(ctx context.Context) {
	reminders, err := s.store.ListReminders(ctx)
	if err != nil {
		logger.Warn("Scheduler: failed to list reminders: %v", err)
		return
	}

	now := time.Now()
	for i := range reminders {
		reminder := &reminders[i]
		if !reminder.Enabled {
			continue
		}
		if reminder.NextRun.IsZero() || !reminder.NextRun.After(now) {
			s.deliverAsync(ctx, reminder)
		}
	}
}

// deliverAsync runs a delivery in the background.
func (s *ReminderScheduler) deliverAsync(ctx context.Context, reminder *domain.Reminder) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.limiter.Wait(ctx); err != nil {
			return
		}
		if err := s.deliver(ctx, reminder); err != nil {
			logger.Warn("Scheduler: delivery of %s failed: %v", reminder.ID, err)
		}
	}()
}

// deliver builds and sends the notification for a reminder, then
// records the outcome.
func (s *ReminderScheduler) deliver(ctx context.Context, reminder *domain.Reminder) error {
	result := &domain.ReminderResult{
		ReminderID: reminder.ID,
		StartedAt:  time.Now(),
	}

	notification, err := s.buildNotification(ctx, reminder.Kind)
	if err == nil {
		err = s.notify(ctx, *notification)
	}

	result.EndedAt = time.Now()
	if err != nil {
		result.Success = false
		result.Error = err.Error()
		reminder.LastError = err.Error()
	} else {
		result.Success = true
		reminder.LastError = ""
		reminder.LastSuccess = result.EndedAt
	}

	reminder.LastRun = result.StartedAt
	reminder.NextRun = result.EndedAt.Add(reminder.Interval)

	if saveErr := s.store.SaveReminder(ctx, reminder); saveErr != nil {
		logger.Warn("Scheduler: failed to save reminder %s: %v", reminder.ID, saveErr)
	}
	if recordErr := s.store.RecordResult(ctx, result); recordErr != nil {
		logger.Warn("Scheduler: failed to record result for %s: %v", reminder.ID, recordErr)
	}
	if pruneErr := s.store.PruneHistory(ctx, historyKeep); pruneErr != nil {
		logger.Warn("Scheduler: failed to prune history: %v", pruneErr)
	}

	return err
}

// buildNotification assembles the payload for a reminder kind.
func (s *ReminderScheduler) buildNotification(
	ctx context.Context, kind domain.ReminderKind,
) (*domain.Notification, error) {
	switch kind {
	case domain.ReminderDailyQuote:
		quote, err := s.quotes.Random(ctx)
		if err != nil {
			return nil, fmt.Errorf("pick quote: %w", err)
		}
		body := quote.Text
		if quote.Author != "" {
			body += " - " + quote.Author
		}
		return &domain.Notification{
			Title: "Quote of the day",
			Body:  body,
			Kind:  kind,
		}, nil

	case domain.ReminderJournalPrompt:
		prompt := journalPrompts[time.Now().YearDay()%len(journalPrompts)]
		return &domain.Notification{
			Title: "Time to journal",
			Body:  prompt,
			Kind:  kind,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown reminder kind %q", domain.ErrInvalidInput, kind)
	}
}

// notify hands the notification to the delivery boundary.
func (s *ReminderScheduler) notify(ctx context.Context, n domain.Notification) error {
	if s.notifier == nil {
		logger.Debug("No notifier configured, dropping %s notification", n.Kind)
		return nil
	}
	return s.notifier.Notify(ctx, n)
}
