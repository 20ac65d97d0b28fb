package sqlite

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
	"github.com/solace-labs/solace-cli/internal/textnorm"
)

// ftsIndex implements driven.SearchIndex over the FTS5 virtual tables.
// Text is normalised before indexing and before querying so that
// matching is case- and diacritic-insensitive.
type ftsIndex struct {
	store *Store
}

var _ driven.SearchIndex = (*ftsIndex)(nil)

// IndexQuote adds or updates a quote in the index.
func (f *ftsIndex) IndexQuote(ctx context.Context, quote domain.Quote) error {
	if _, err := f.store.db.ExecContext(ctx,
		"DELETE FROM quotes_fts WHERE id = ?", quote.ID); err != nil {
		return fmt.Errorf("removing stale quote index: %w", err)
	}
	_, err := f.store.db.ExecContext(ctx, `
		INSERT INTO quotes_fts (id, text, author) VALUES (?, ?, ?)
	`, quote.ID, textnorm.Normalize(quote.Text), textnorm.Normalize(quote.Author))
	if err != nil {
		return fmt.Errorf("indexing quote: %w", err)
	}
	return nil
}

// IndexEntry adds or updates a journal entry in the index.
func (f *ftsIndex) IndexEntry(ctx context.Context, entry domain.JournalEntry) error {
	if _, err := f.store.db.ExecContext(ctx,
		"DELETE FROM journal_fts WHERE id = ?", entry.ID); err != nil {
		return fmt.Errorf("removing stale entry index: %w", err)
	}
	_, err := f.store.db.ExecContext(ctx, `
		INSERT INTO journal_fts (id, title, content) VALUES (?, ?, ?)
	`, entry.ID, textnorm.Normalize(entry.Title), textnorm.Normalize(entry.Content))
	if err != nil {
		return fmt.Errorf("indexing journal entry: %w", err)
	}
	return nil
}

// DeleteQuote removes a quote from the index.
func (f *ftsIndex) DeleteQuote(ctx context.Context, id string) error {
	if _, err := f.store.db.ExecContext(ctx,
		"DELETE FROM quotes_fts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting quote from index: %w", err)
	}
	return nil
}

// DeleteEntry removes a journal entry from the index.
func (f *ftsIndex) DeleteEntry(ctx context.Context, id string) error {
	if _, err := f.store.db.ExecContext(ctx,
		"DELETE FROM journal_fts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting entry from index: %w", err)
	}
	return nil
}

// Search performs a prefix-match keyword search across the requested
// scope, returning hits best first. FTS5's bm25() returns lower values
// for better matches, so scores are negated to make higher better.
func (f *ftsIndex) Search(ctx context.Context, query string, scope domain.SearchScope, limit int) ([]driven.IndexHit, error) {
	match := buildMatchQuery(query)
	if match == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	var hits []driven.IndexHit

	if scope == domain.ScopeAll || scope == domain.ScopeQuotes {
		quoteHits, err := f.searchTable(ctx, "quotes_fts", domain.KindQuote, match, limit)
		if err != nil {
			return nil, err
		}
		hits = append(hits, quoteHits...)
	}

	if scope == domain.ScopeAll || scope == domain.ScopeJournal {
		entryHits, err := f.searchTable(ctx, "journal_fts", domain.KindJournal, match, limit)
		if err != nil {
			return nil, err
		}
		hits = append(hits, entryHits...)
	}

	// Merge the per-table result sets into one best-first list.
	sortHits(hits)
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// searchTable runs a MATCH query against one FTS table.
func (f *ftsIndex) searchTable(
	ctx context.Context, table string, kind domain.ResultKind, match string, limit int,
) ([]driven.IndexHit, error) {
	// table is one of two fixed names, never user input.
	query := fmt.Sprintf(`
		SELECT id, bm25(%s) FROM %s
		WHERE %s MATCH ?
		ORDER BY rank
		LIMIT ?
	`, table, table, table)

	rows, err := f.store.db.QueryContext(ctx, query, match, limit)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", table, err)
	}
	defer rows.Close()

	var hits []driven.IndexHit //nolint:prealloc // size unknown from query
	for rows.Next() {
		var hit driven.IndexHit
		var rank float64
		if err := rows.Scan(&hit.ID, &rank); err != nil {
			return nil, fmt.Errorf("scanning %s hit: %w", table, err)
		}
		hit.Kind = kind
		hit.Score = -rank
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s hits: %w", table, err)
	}
	return hits, nil
}

// Rebuild drops and re-creates the index contents from the base tables.
func (f *ftsIndex) Rebuild(ctx context.Context) error {
	tx, err := f.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning rebuild: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM quotes_fts"); err != nil {
		return fmt.Errorf("clearing quote index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM journal_fts"); err != nil {
		return fmt.Errorf("clearing journal index: %w", err)
	}

	// Repopulate with normalised text.
	quoteRows, err := tx.QueryContext(ctx, "SELECT id, text, author FROM quotes")
	if err != nil {
		return fmt.Errorf("reading quotes: %w", err)
	}
	type record struct{ id, a, b string }
	var quotes []record
	for quoteRows.Next() {
		var r record
		if err := quoteRows.Scan(&r.id, &r.a, &r.b); err != nil {
			quoteRows.Close()
			return fmt.Errorf("scanning quote: %w", err)
		}
		quotes = append(quotes, r)
	}
	if err := quoteRows.Err(); err != nil {
		quoteRows.Close()
		return fmt.Errorf("iterating quotes: %w", err)
	}
	quoteRows.Close()

	entryRows, err := tx.QueryContext(ctx, "SELECT id, title, content FROM journal_entries")
	if err != nil {
		return fmt.Errorf("reading journal entries: %w", err)
	}
	var entries []record
	for entryRows.Next() {
		var r record
		if err := entryRows.Scan(&r.id, &r.a, &r.b); err != nil {
			entryRows.Close()
			return fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, r)
	}
	if err := entryRows.Err(); err != nil {
		entryRows.Close()
		return fmt.Errorf("iterating journal entries: %w", err)
	}
	entryRows.Close()

	for _, q := range quotes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO quotes_fts (id, text, author) VALUES (?, ?, ?)",
			q.id, textnorm.Normalize(q.a), textnorm.Normalize(q.b)); err != nil {
			return fmt.Errorf("reindexing quote %s: %w", q.id, err)
		}
	}
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO journal_fts (id, title, content) VALUES (?, ?, ?)",
			e.id, textnorm.Normalize(e.a), textnorm.Normalize(e.b)); err != nil {
			return fmt.Errorf("reindexing entry %s: %w", e.id, err)
		}
	}

	return tx.Commit()
}

// Close releases resources. The underlying connection is owned by the
// Store, so this is a no-op.
func (f *ftsIndex) Close() error {
	return nil
}

// buildMatchQuery turns free text into a safe FTS5 MATCH expression.
// textnorm.PrepareSearchQuery does the tokenising and prefix expansion;
// this only adds double quotes around each term so FTS5 operators
// (AND, OR, NEAR, -) in user input are not interpreted.
func buildMatchQuery(query string) string {
	prepared := textnorm.PrepareSearchQuery(query)

	parts := strings.Fields(prepared)
	for i, part := range parts {
		term, wildcard := strings.CutSuffix(part, "*")
		if wildcard {
			parts[i] = `"` + term + `"*`
		} else {
			parts[i] = `"` + term + `"`
		}
	}
	return strings.Join(parts, " ")
}

// sortHits orders hits by score descending, ties broken by ID for
// deterministic output.
func sortHits(hits []driven.IndexHit) {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score == hits[j].Score {
			return hits[i].ID < hits[j].ID
		}
		return hits[i].Score > hits[j].Score
	})
}
