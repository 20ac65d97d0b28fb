package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solace-labs/solace-cli/internal/adapters/driven/storage/memory"
	"github.com/solace-labs/solace-cli/internal/core/domain"
)

func setupBackupService(t *testing.T) (*BackupService, *memory.QuoteStore, *memory.JournalStore, *memory.ExerciseStore, *mockSearchIndex) {
	t.Helper()
	quoteStore := memory.NewQuoteStore()
	journalStore := memory.NewJournalStore()
	exerciseStore := memory.NewExerciseStore()
	index := &mockSearchIndex{}
	service := NewBackupService(quoteStore, journalStore, exerciseStore, index)
	return service, quoteStore, journalStore, exerciseStore, index
}

func TestBackupService_Export(t *testing.T) {
	service, quoteStore, journalStore, exerciseStore, _ := setupBackupService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, quoteStore.SaveQuote(ctx, &domain.Quote{ID: "q-1", Text: "Keep going.", CreatedAt: now}))
	require.NoError(t, journalStore.SaveEntry(ctx, &domain.JournalEntry{ID: "e-1", Content: "A full day.", CreatedAt: now}))
	require.NoError(t, exerciseStore.SaveSession(ctx, &domain.ExerciseSession{ID: "s-1", ExerciseID: "box-breathing", CompletedAt: now}))

	var buf bytes.Buffer
	require.NoError(t, service.Export(ctx, &buf))

	var backup domain.Backup
	require.NoError(t, json.Unmarshal(buf.Bytes(), &backup))
	assert.Equal(t, domain.BackupVersion, backup.Version)
	assert.False(t, backup.ExportedAt.IsZero())
	require.Len(t, backup.Quotes, 1)
	require.Len(t, backup.Entries, 1)
	require.Len(t, backup.Sessions, 1)
	assert.Equal(t, "Keep going.", backup.Quotes[0].Text)
}

func TestBackupService_RoundTrip(t *testing.T) {
	source, quoteStore, journalStore, exerciseStore, _ := setupBackupService(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, quoteStore.SaveQuote(ctx, &domain.Quote{
		ID: "q-1", Text: "Keep going.", Author: "Unknown", IsFavorite: true, ReadCount: 4, CreatedAt: now,
	}))
	require.NoError(t, journalStore.SaveEntry(ctx, &domain.JournalEntry{
		ID: "e-1", Title: "Day one", Content: "A full day.", Tags: []string{"work"}, WordCount: 3, CreatedAt: now,
	}))
	require.NoError(t, exerciseStore.SaveSession(ctx, &domain.ExerciseSession{
		ID: "s-1", ExerciseID: "box-breathing", CompletedAt: now,
	}))

	var buf bytes.Buffer
	require.NoError(t, source.Export(ctx, &buf))

	target, targetQuotes, targetJournal, targetExercises, index := setupBackupService(t)
	backup, err := target.Import(ctx, &buf)
	require.NoError(t, err)
	assert.Len(t, backup.Quotes, 1)

	quote, err := targetQuotes.GetQuote(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "Keep going.", quote.Text)
	assert.True(t, quote.IsFavorite)
	assert.Equal(t, 4, quote.ReadCount)

	entry, err := targetJournal.GetEntry(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"work"}, entry.Tags)

	count, err := targetExercises.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Imported records are re-indexed.
	assert.ElementsMatch(t, []string{"q-1", "e-1"}, index.indexed)
}

func TestBackupService_Import_WrongVersion(t *testing.T) {
	service, _, _, _, _ := setupBackupService(t)

	_, err := service.Import(context.Background(), strings.NewReader(`{"version": 99}`))

	assert.ErrorIs(t, err, domain.ErrBackupVersion)
}

func TestBackupService_Import_MalformedJSON(t *testing.T) {
	service, _, _, _, _ := setupBackupService(t)

	_, err := service.Import(context.Background(), strings.NewReader(`{not json`))

	assert.Error(t, err)
}

func TestBackupService_Import_InvalidRecord(t *testing.T) {
	service, quoteStore, _, _, _ := setupBackupService(t)
	ctx := context.Background()

	doc := `{"version": 1, "exported_at": "2025-01-01T00:00:00Z", "quotes": [{"ID": "q-1", "Text": ""}], "entries": [], "sessions": []}`
	_, err := service.Import(ctx, strings.NewReader(doc))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	count, countErr := quoteStore.CountQuotes(ctx)
	require.NoError(t, countErr)
	assert.Zero(t, count)
}

func TestBackupService_Import_IndexFailureIsNotFatal(t *testing.T) {
	quoteStore := memory.NewQuoteStore()
	index := &mockSearchIndex{indexErr: assert.AnError}
	service := NewBackupService(quoteStore, memory.NewJournalStore(), memory.NewExerciseStore(), index)
	ctx := context.Background()

	doc := `{"version": 1, "exported_at": "2025-01-01T00:00:00Z", "quotes": [{"ID": "q-1", "Text": "Survives."}], "entries": [], "sessions": []}`
	backup, err := service.Import(ctx, strings.NewReader(doc))

	require.NoError(t, err)
	assert.Len(t, backup.Quotes, 1)

	quote, err := quoteStore.GetQuote(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "Survives.", quote.Text)
}
