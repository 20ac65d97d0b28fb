package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

func TestReminderStore_GetReminder_Missing(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	reminder, err := store.ReminderStore().GetReminder(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, reminder)
}

func TestReminderStore_SaveGetRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	reminders := store.ReminderStore()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	reminder := &domain.Reminder{
		ID:          "daily-quote",
		Name:        "Daily Quote",
		Kind:        domain.ReminderDailyQuote,
		Interval:    24 * time.Hour,
		LastRun:     now.Add(-time.Hour),
		NextRun:     now.Add(23 * time.Hour),
		LastSuccess: now.Add(-time.Hour),
		Enabled:     true,
	}
	require.NoError(t, reminders.SaveReminder(ctx, reminder))

	got, err := reminders.GetReminder(ctx, "daily-quote")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ReminderDailyQuote, got.Kind)
	assert.Equal(t, 24*time.Hour, got.Interval)
	assert.True(t, got.LastRun.Equal(reminder.LastRun))
	assert.True(t, got.NextRun.Equal(reminder.NextRun))
	assert.True(t, got.Enabled)
	assert.Empty(t, got.LastError)
}

func TestReminderStore_Save_ZeroTimesStayZero(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	reminders := store.ReminderStore()
	ctx := context.Background()

	require.NoError(t, reminders.SaveReminder(ctx, &domain.Reminder{
		ID:       "fresh",
		Name:     "Fresh",
		Kind:     domain.ReminderJournalPrompt,
		Interval: time.Hour,
	}))

	got, err := reminders.GetReminder(ctx, "fresh")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.LastRun.IsZero())
	assert.True(t, got.NextRun.IsZero())
	assert.True(t, got.LastSuccess.IsZero())
}

func TestReminderStore_ListReminders(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	reminders := store.ReminderStore()
	ctx := context.Background()

	require.NoError(t, reminders.SaveReminder(ctx, &domain.Reminder{ID: "b", Name: "B", Kind: domain.ReminderJournalPrompt, Interval: time.Hour}))
	require.NoError(t, reminders.SaveReminder(ctx, &domain.Reminder{ID: "a", Name: "A", Kind: domain.ReminderDailyQuote, Interval: time.Hour}))

	listed, err := reminders.ListReminders(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "a", listed[0].ID)
	assert.Equal(t, "b", listed[1].ID)
}

func TestReminderStore_DeleteReminder_RemovesHistory(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	reminders := store.ReminderStore()
	ctx := context.Background()

	require.NoError(t, reminders.SaveReminder(ctx, &domain.Reminder{ID: "r-1", Name: "R", Kind: domain.ReminderDailyQuote, Interval: time.Hour}))
	require.NoError(t, reminders.RecordResult(ctx, &domain.ReminderResult{
		ReminderID: "r-1", StartedAt: time.Now(), EndedAt: time.Now(), Success: true,
	}))

	require.NoError(t, reminders.DeleteReminder(ctx, "r-1"))

	got, err := reminders.GetReminder(ctx, "r-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	history, err := reminders.GetHistory(ctx, "r-1", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestReminderStore_History_OrderLimitAndPrune(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	reminders := store.ReminderStore()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 6; i++ {
		require.NoError(t, reminders.RecordResult(ctx, &domain.ReminderResult{
			ReminderID: "r-1",
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			EndedAt:    base.Add(time.Duration(i)*time.Minute + time.Second),
			Success:    i%2 == 0,
			Error:      fmt.Sprintf("run %d", i),
		}))
	}

	history, err := reminders.GetHistory(ctx, "r-1", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "run 5", history[0].Error)
	assert.Equal(t, "run 3", history[2].Error)

	require.NoError(t, reminders.PruneHistory(ctx, 2))

	remaining, err := reminders.GetHistory(ctx, "r-1", 10)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "run 5", remaining[0].Error)
	assert.Equal(t, "run 4", remaining[1].Error)
}
