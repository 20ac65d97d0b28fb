package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

func seedIndex(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()
	index := store.SearchIndex()

	quotes := []domain.Quote{
		{ID: "q-1", Text: "Hope is the thing with feathers that perches in the soul.", Author: "Emily Dickinson"},
		{ID: "q-2", Text: "No mud, no lotus.", Author: "Thich Nhat Hanh"},
		{ID: "q-3", Text: "Begin again at the café.", Author: "Anonymous"},
	}
	for _, q := range quotes {
		require.NoError(t, store.QuoteStore().SaveQuote(ctx, &q))
		require.NoError(t, index.IndexQuote(ctx, q))
	}

	entries := []domain.JournalEntry{
		{ID: "e-1", Title: "Monday", Content: "Holding on to hope despite the setbacks at work."},
		{ID: "e-2", Title: "Garden", Content: "The tomatoes are finally ripening."},
	}
	for _, e := range entries {
		require.NoError(t, store.JournalStore().SaveEntry(ctx, &e))
		require.NoError(t, index.IndexEntry(ctx, e))
	}
}

func TestFTSIndex_Search_AllScopes(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedIndex(t, store)
	index := store.SearchIndex()
	ctx := context.Background()

	hits, err := index.Search(ctx, "hope", domain.ScopeAll, 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)

	ids := []string{hits[0].ID, hits[1].ID}
	assert.Contains(t, ids, "q-1")
	assert.Contains(t, ids, "e-1")
	for _, h := range hits {
		assert.Greater(t, h.Score, 0.0)
	}
}

func TestFTSIndex_Search_ScopeFilters(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedIndex(t, store)
	index := store.SearchIndex()
	ctx := context.Background()

	quoteHits, err := index.Search(ctx, "hope", domain.ScopeQuotes, 10)
	require.NoError(t, err)
	require.Len(t, quoteHits, 1)
	assert.Equal(t, domain.KindQuote, quoteHits[0].Kind)

	journalHits, err := index.Search(ctx, "hope", domain.ScopeJournal, 10)
	require.NoError(t, err)
	require.Len(t, journalHits, 1)
	assert.Equal(t, domain.KindJournal, journalHits[0].Kind)
}

func TestFTSIndex_Search_PrefixMatch(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedIndex(t, store)

	hits, err := store.SearchIndex().Search(context.Background(), "feath", domain.ScopeAll, 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "q-1", hits[0].ID)
}

func TestFTSIndex_Search_DiacriticInsensitive(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedIndex(t, store)

	hits, err := store.SearchIndex().Search(context.Background(), "cafe", domain.ScopeQuotes, 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "q-3", hits[0].ID)
}

func TestFTSIndex_Search_OperatorsAreLiteral(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedIndex(t, store)

	// FTS5 syntax in user input must not produce a query error.
	_, err := store.SearchIndex().Search(context.Background(), `hope ("lotus) OR -soul NEAR/2`, domain.ScopeAll, 10)
	require.NoError(t, err)
}

func TestFTSIndex_Search_EmptyQuery(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedIndex(t, store)

	hits, err := store.SearchIndex().Search(context.Background(), "   ", domain.ScopeAll, 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestFTSIndex_IndexQuote_UpdateReplaces(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	index := store.SearchIndex()
	ctx := context.Background()

	quote := domain.Quote{ID: "q-1", Text: "Original wording here."}
	require.NoError(t, store.QuoteStore().SaveQuote(ctx, &quote))
	require.NoError(t, index.IndexQuote(ctx, quote))

	quote.Text = "Rewritten entirely now."
	require.NoError(t, store.QuoteStore().SaveQuote(ctx, &quote))
	require.NoError(t, index.IndexQuote(ctx, quote))

	stale, err := index.Search(ctx, "original", domain.ScopeQuotes, 10)
	require.NoError(t, err)
	assert.Empty(t, stale)

	fresh, err := index.Search(ctx, "rewritten", domain.ScopeQuotes, 10)
	require.NoError(t, err)
	assert.Len(t, fresh, 1)
}

func TestFTSIndex_Delete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	seedIndex(t, store)
	index := store.SearchIndex()
	ctx := context.Background()

	require.NoError(t, index.DeleteQuote(ctx, "q-2"))

	hits, err := index.Search(ctx, "lotus", domain.ScopeQuotes, 10)
	require.NoError(t, err)
	assert.Empty(t, hits)

	require.NoError(t, index.DeleteEntry(ctx, "e-2"))

	hits, err = index.Search(ctx, "tomatoes", domain.ScopeJournal, 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestFTSIndex_Rebuild(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	index := store.SearchIndex()

	// Rows exist in the base tables but were never indexed.
	require.NoError(t, store.QuoteStore().SaveQuote(ctx, &domain.Quote{ID: "q-1", Text: "Patience is bitter but its fruit is sweet."}))
	require.NoError(t, store.JournalStore().SaveEntry(ctx, &domain.JournalEntry{ID: "e-1", Content: "Practised patience with the kids today."}))

	before, err := index.Search(ctx, "patience", domain.ScopeAll, 10)
	require.NoError(t, err)
	assert.Empty(t, before)

	require.NoError(t, index.Rebuild(ctx))

	after, err := index.Search(ctx, "patience", domain.ScopeAll, 10)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestBuildMatchQuery(t *testing.T) {
	assert.Equal(t, `"hope"* "faith"*`, buildMatchQuery("Hope, Faith!"))
	assert.Equal(t, `"cafe"*`, buildMatchQuery("café"))
	assert.Equal(t, "", buildMatchQuery("  ...  "))

	// Single-rune queries are quoted but keep their exact-match form.
	assert.Equal(t, `"i"`, buildMatchQuery("I"))
}
