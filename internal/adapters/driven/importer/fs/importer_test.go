package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solace-labs/solace-cli/internal/adapters/driven/storage/memory"
	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/services"
)

func setupImporter(t *testing.T) (*Importer, *memory.JournalStore) {
	t.Helper()
	store := memory.NewJournalStore()
	journal := services.NewJournalService(store, nil)
	return NewImporter(journal), store
}

func TestImporter_ImportDir(t *testing.T) {
	importer, store := setupImporter(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "monday.txt"),
		[]byte("Slept well and took a long walk."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"),
		[]byte("# A quiet morning\n\nCoffee on the porch before work."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.png"),
		[]byte{0x89, 0x50}, 0644))

	imported, err := importer.ImportDir(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, imported, 2)

	entries, err := store.ListEntries(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byTitle := make(map[string]domain.JournalEntry)
	for _, e := range entries {
		byTitle[e.Title] = e
	}

	plain, ok := byTitle["monday"]
	require.True(t, ok, "plain text file should use the filename as title")
	assert.Equal(t, "Slept well and took a long walk.", plain.Content)
	assert.Equal(t, 7, plain.WordCount)

	md, ok := byTitle["A quiet morning"]
	require.True(t, ok, "markdown heading should become the title")
	assert.Equal(t, "Coffee on the porch before work.", md.Content)
	assert.NotContains(t, md.Content, "#")
}

func TestImporter_ImportDir_SkipsEmptyFiles(t *testing.T) {
	importer, store := setupImporter(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("   \n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt"), []byte("content"), 0644))

	imported, err := importer.ImportDir(context.Background(), dir)

	require.NoError(t, err)
	assert.Len(t, imported, 1)

	count, err := store.CountEntries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImporter_ImportDir_MissingDirectory(t *testing.T) {
	importer, _ := setupImporter(t)

	_, err := importer.ImportDir(context.Background(), "/non/existent/path")

	assert.Error(t, err)
}

func TestImporter_ImportDir_UsesFileModTime(t *testing.T) {
	importer, store := setupImporter(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "old.txt")
	require.NoError(t, os.WriteFile(path, []byte("an older note"), 0644))
	past := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, past, past))

	_, err := importer.ImportDir(context.Background(), dir)
	require.NoError(t, err)

	entries, err := store.ListEntries(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].CreatedAt.Equal(past))
}

func TestImporter_Watch(t *testing.T) {
	t.Run("imports created files", func(t *testing.T) {
		importer, store := setupImporter(t)
		dir := t.TempDir()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		results, err := importer.Watch(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, results)

		go func() {
			time.Sleep(50 * time.Millisecond)
			os.WriteFile(filepath.Join(dir, "evening.txt"), []byte("wound down with a book"), 0644)
		}()

		select {
		case res := <-results:
			require.NoError(t, res.Err)
			require.NotNil(t, res.Entry)
			assert.Equal(t, "evening", res.Entry.Title)
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for import result")
		}

		count, err := store.CountEntries(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("ignores non-importable files", func(t *testing.T) {
		importer, store := setupImporter(t)
		dir := t.TempDir()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		results, err := importer.Watch(ctx, dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte("{}"), 0644))

		select {
		case res := <-results:
			t.Fatalf("unexpected result for %s", res.Path)
		case <-time.After(200 * time.Millisecond):
		}

		count, err := store.CountEntries(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("closes channel when context is cancelled", func(t *testing.T) {
		importer, _ := setupImporter(t)
		dir := t.TempDir()

		ctx, cancel := context.WithCancel(context.Background())
		results, err := importer.Watch(ctx, dir)
		require.NoError(t, err)

		cancel()

		select {
		case _, ok := <-results:
			if ok {
				for range results {
				}
			}
		case <-time.After(2 * time.Second):
			t.Fatal("channel did not close after context cancellation")
		}
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		importer, _ := setupImporter(t)

		results, err := importer.Watch(context.Background(), "/non/existent/path")

		assert.Error(t, err)
		assert.Nil(t, results)
	})

	t.Run("returns error when importer is closed", func(t *testing.T) {
		importer, _ := setupImporter(t)
		importer.Close()

		results, err := importer.Watch(context.Background(), t.TempDir())

		assert.Error(t, err)
		assert.Nil(t, results)
		assert.Contains(t, err.Error(), "closed")
	})
}

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		raw         string
		wantTitle   string
		wantContent string
	}{
		{
			name:        "plain text uses filename",
			path:        "/notes/gratitude.txt",
			raw:         "thankful for small things",
			wantTitle:   "gratitude",
			wantContent: "thankful for small things",
		},
		{
			name:        "markdown heading becomes title",
			path:        "/notes/day.md",
			raw:         "# Rough day\n\nBut tomorrow is new.",
			wantTitle:   "Rough day",
			wantContent: "But tomorrow is new.",
		},
		{
			name:        "markdown without heading uses filename",
			path:        "/notes/day.md",
			raw:         "just some text",
			wantTitle:   "day",
			wantContent: "just some text",
		},
		{
			name:        "heading is not stripped from txt files",
			path:        "/notes/day.txt",
			raw:         "# not a heading here",
			wantTitle:   "day",
			wantContent: "# not a heading here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, content := splitTitle(tt.path, tt.raw)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantContent, content)
		})
	}
}
