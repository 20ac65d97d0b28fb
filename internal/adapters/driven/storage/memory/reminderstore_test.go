package memory

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
	store := NewReminderStore()

	reminder, err := store.GetReminder(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, reminder)
}

func TestReminderStore_SaveAndList(t *testing.T) {
	store := NewReminderStore()
	ctx := context.Background()

	reminders := []domain.Reminder{
		{ID: "r-b", Name: "Journal Prompt", Kind: domain.ReminderJournalPrompt, Enabled: true},
		{ID: "r-a", Name: "Daily Quote", Kind: domain.ReminderDailyQuote, Enabled: true},
	}
	for i := range reminders {
		require.NoError(t, store.SaveReminder(ctx, &reminders[i]))
	}

	listed, err := store.ListReminders(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// Ordered by ID.
	assert.Equal(t, "r-a", listed[0].ID)
	assert.Equal(t, "r-b", listed[1].ID)

	got, err := store.GetReminder(ctx, "r-a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Daily Quote", got.Name)
}

func TestReminderStore_Delete(t *testing.T) {
	store := NewReminderStore()
	ctx := context.Background()

	require.NoError(t, store.SaveReminder(ctx, &domain.Reminder{ID: "r-1"}))
	require.NoError(t, store.RecordResult(ctx, &domain.ReminderResult{ReminderID: "r-1", Success: true}))
	require.NoError(t, store.DeleteReminder(ctx, "r-1"))

	reminder, err := store.GetReminder(ctx, "r-1")
	require.NoError(t, err)
	assert.Nil(t, reminder)

	history, err := store.GetHistory(ctx, "r-1", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestReminderStore_History_OrderAndLimit(t *testing.T) {
	store := NewReminderStore()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		result := &domain.ReminderResult{
			ReminderID: "r-1",
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			Success:    i%2 == 0,
			Error:      fmt.Sprintf("run %d", i),
		}
		require.NoError(t, store.RecordResult(ctx, result))
	}

	history, err := store.GetHistory(ctx, "r-1", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	// Most recent first.
	assert.Equal(t, "run 4", history[0].Error)
	assert.Equal(t, "run 2", history[2].Error)
}

func TestReminderStore_PruneHistory(t *testing.T) {
	store := NewReminderStore()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 10; i++ {
		require.NoError(t, store.RecordResult(ctx, &domain.ReminderResult{
			ReminderID: "r-1",
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	require.NoError(t, store.PruneHistory(ctx, 4))

	history, err := store.GetHistory(ctx, "r-1", 0)
	require.NoError(t, err)
	assert.Len(t, history, 4)
	assert.Equal(t, base.Add(9*time.Minute).Unix(), history[0].StartedAt.Unix())
}
