package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
)

// reminderStore implements driven.ReminderStore.
type reminderStore struct {
	store *Store
}

var _ driven.ReminderStore = (*reminderStore)(nil)

// GetReminder retrieves a reminder by ID.
// Returns nil and no error if the reminder does not exist.
func (s *reminderStore) GetReminder(ctx context.Context, id string) (*domain.Reminder, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, kind, interval_seconds, last_run, next_run, last_error, last_success, enabled
		FROM reminders WHERE id = ?
	`, id)

	reminder, err := scanReminder(row)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil // Per interface: return nil and no error if not found
	}
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// ListReminders returns all reminders.
func (s *reminderStore) ListReminders(ctx context.Context) ([]domain.Reminder, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, kind, interval_seconds, last_run, next_run, last_error, last_success, enabled
		FROM reminders
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying reminders: %w", err)
	}
	defer rows.Close()

	var reminders []domain.Reminder //nolint:prealloc // size unknown from query
	for rows.Next() {
		reminder, err := scanReminderRows(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}
	return reminders, nil
}

// SaveReminder persists a reminder's state.
// Creates or updates based on ID.
func (s *reminderStore) SaveReminder(ctx context.Context, reminder *domain.Reminder) error {
	if reminder == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO reminders (id, name, kind, interval_seconds, last_run, next_run, last_error, last_success, enabled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind,
			interval_seconds = excluded.interval_seconds,
			last_run = excluded.last_run,
			next_run = excluded.next_run,
			last_error = excluded.last_error,
			last_success = excluded.last_success,
			enabled = excluded.enabled
	`, reminder.ID, reminder.Name, string(reminder.Kind), int64(reminder.Interval.Seconds()),
		formatNullableTime(reminder.LastRun), formatNullableTime(reminder.NextRun),
		nullString(reminder.LastError), formatNullableTime(reminder.LastSuccess),
		boolToInt(reminder.Enabled))

	if err != nil {
		return fmt.Errorf("saving reminder: %w", err)
	}
	return nil
}

// DeleteReminder removes a reminder and its history.
func (s *reminderStore) DeleteReminder(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM reminder_results WHERE reminder_id = ?", id); err != nil {
		return fmt.Errorf("deleting reminder history: %w", err)
	}
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}
	return nil
}

// RecordResult logs a delivery result.
func (s *reminderStore) RecordResult(ctx context.Context, result *domain.ReminderResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO reminder_results (reminder_id, started_at, ended_at, success, error)
		VALUES (?, ?, ?, ?, ?)
	`, result.ReminderID,
		result.StartedAt.Format(time.RFC3339),
		result.EndedAt.Format(time.RFC3339),
		boolToInt(result.Success),
		nullString(result.Error))

	if err != nil {
		return fmt.Errorf("recording reminder result: %w", err)
	}
	return nil
}

// GetHistory returns recent results for a reminder.
// Results are ordered by start time descending (most recent first).
func (s *reminderStore) GetHistory(ctx context.Context, reminderID string, limit int) ([]domain.ReminderResult, error) {
	query := `
		SELECT reminder_id, started_at, ended_at, success, error
		FROM reminder_results
		WHERE reminder_id = ?
		ORDER BY started_at DESC
	`
	args := []any{reminderID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reminder history: %w", err)
	}
	defer rows.Close()

	var results []domain.ReminderResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		result, err := scanReminderResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminder history: %w", err)
	}
	return results, nil
}

// PruneHistory removes old results beyond the retention limit.
// Keeps the most recent 'keep' results per reminder.
func (s *reminderStore) PruneHistory(ctx context.Context, keep int) error {
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM reminder_results
		WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (PARTITION BY reminder_id ORDER BY started_at DESC) as rn
				FROM reminder_results
			) WHERE rn <= ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning reminder history: %w", err)
	}
	return nil
}

// scanReminder scans a single reminder row.
func scanReminder(row *sql.Row) (*domain.Reminder, error) {
	var reminder domain.Reminder
	var kind string
	var intervalSeconds int64
	var lastRun, nextRun, lastError, lastSuccess sql.NullString
	var enabled int

	if err := row.Scan(&reminder.ID, &reminder.Name, &kind, &intervalSeconds,
		&lastRun, &nextRun, &lastError, &lastSuccess, &enabled); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}

	reminder.Kind = domain.ReminderKind(kind)
	reminder.Interval = time.Duration(intervalSeconds) * time.Second
	reminder.LastRun = parseNullableTime(lastRun)
	reminder.NextRun = parseNullableTime(nextRun)
	if lastError.Valid {
		reminder.LastError = lastError.String
	}
	reminder.LastSuccess = parseNullableTime(lastSuccess)
	reminder.Enabled = enabled == 1

	return &reminder, nil
}

// scanReminderRows scans a reminder from *sql.Rows.
func scanReminderRows(rows *sql.Rows) (*domain.Reminder, error) {
	var reminder domain.Reminder
	var kind string
	var intervalSeconds int64
	var lastRun, nextRun, lastError, lastSuccess sql.NullString
	var enabled int

	if err := rows.Scan(&reminder.ID, &reminder.Name, &kind, &intervalSeconds,
		&lastRun, &nextRun, &lastError, &lastSuccess, &enabled); err != nil {
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}

	reminder.Kind = domain.ReminderKind(kind)
	reminder.Interval = time.Duration(intervalSeconds) * time.Second
	reminder.LastRun = parseNullableTime(lastRun)
	reminder.NextRun = parseNullableTime(nextRun)
	if lastError.Valid {
		reminder.LastError = lastError.String
	}
	reminder.LastSuccess = parseNullableTime(lastSuccess)
	reminder.Enabled = enabled == 1

	return &reminder, nil
}

// scanReminderResult scans a reminder result from *sql.Rows.
func scanReminderResult(rows *sql.Rows) (*domain.ReminderResult, error) {
	var result domain.ReminderResult
	var startedAt, endedAt string
	var success int
	var errMsg sql.NullString

	if err := rows.Scan(&result.ReminderID, &startedAt, &endedAt, &success, &errMsg); err != nil {
		return nil, fmt.Errorf("scanning reminder result: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
		result.StartedAt = t
	}
	if t, err := time.Parse(time.RFC3339, endedAt); err == nil {
		result.EndedAt = t
	}
	result.Success = success == 1
	if errMsg.Valid {
		result.Error = errMsg.String
	}

	return &result, nil
}
