package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/solace-labs/solace-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// all store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.solace/data/solace.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".solace", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "solace.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// QuoteStore returns a QuoteStore interface backed by this store.
func (s *Store) QuoteStore() driven.QuoteStore {
	return &quoteStore{store: s}
}

// JournalStore returns a JournalStore interface backed by this store.
func (s *Store) JournalStore() driven.JournalStore {
	return &journalStore{store: s}
}

// ExerciseStore returns an ExerciseStore interface backed by this store.
func (s *Store) ExerciseStore() driven.ExerciseStore {
	return &exerciseStore{store: s}
}

// ReminderStore returns a ReminderStore interface backed by this store.
func (s *Store) ReminderStore() driven.ReminderStore {
	return &reminderStore{store: s}
}

// SearchIndex returns a SearchIndex backed by this store's FTS5 tables.
func (s *Store) SearchIndex() driven.SearchIndex {
	return &ftsIndex{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Quote Store ====================

// quoteStore implements driven.QuoteStore.
type quoteStore struct {
	store *Store
}

var _ driven.QuoteStore = (*quoteStore)(nil)

// SaveQuote stores or updates a quote.
func (s *quoteStore) SaveQuote(ctx context.Context, quote *domain.Quote) error {
	if quote == nil {
		return domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = now
	}
	if quote.UpdatedAt.IsZero() {
		quote.UpdatedAt = now
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO quotes (id, text, author, category, is_favorite, read_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			text = excluded.text,
			author = excluded.author,
			category = excluded.category,
			is_favorite = excluded.is_favorite,
			read_count = excluded.read_count,
			updated_at = excluded.updated_at
	`, quote.ID, quote.Text, quote.Author, quote.Category,
		boolToInt(quote.IsFavorite), quote.ReadCount,
		quote.CreatedAt.Format(time.RFC3339), quote.UpdatedAt.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("saving quote: %w", err)
	}
	return nil
}

// GetQuote retrieves a quote by ID.
func (s *quoteStore) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, text, author, category, is_favorite, read_count, created_at, updated_at
		FROM quotes WHERE id = ?
	`, id)

	quote, err := scanQuote(row)
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// DeleteQuote removes a quote.
func (s *quoteStore) DeleteQuote(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM quotes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListQuotes returns all quotes, optionally filtered by category,
// ordered by creation time.
func (s *quoteStore) ListQuotes(ctx context.Context, category string) ([]domain.Quote, error) {
	query := `
		SELECT id, text, author, category, is_favorite, read_count, created_at, updated_at
		FROM quotes
	`
	args := []any{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY created_at, id"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	defer rows.Close()

	var quotes []domain.Quote //nolint:prealloc // size unknown from query
	for rows.Next() {
		quote, err := scanQuoteRows(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *quote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}
	return quotes, nil
}

// CountQuotes returns the number of stored quotes.
func (s *quoteStore) CountQuotes(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quotes")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting quotes: %w", err)
	}
	return count, nil
}

// ==================== Journal Store ====================

// journalStore implements driven.JournalStore.
type journalStore struct {
	store *Store
}

var _ driven.JournalStore = (*journalStore)(nil)

// SaveEntry stores or updates a journal entry.
func (s *journalStore) SaveEntry(ctx context.Context, entry *domain.JournalEntry) error {
	if entry == nil {
		return domain.ErrInvalidInput
	}

	tagsJSON, err := json.Marshal(entry.Tags)
	if err != nil {
		return fmt.Errorf("marshalling tags: %w", err)
	}

	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = now
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, title, content, mood, tags, is_favorite, read_count, word_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			mood = excluded.mood,
			tags = excluded.tags,
			is_favorite = excluded.is_favorite,
			read_count = excluded.read_count,
			word_count = excluded.word_count,
			updated_at = excluded.updated_at
	`, entry.ID, entry.Title, entry.Content, string(entry.Mood), string(tagsJSON),
		boolToInt(entry.IsFavorite), entry.ReadCount, entry.WordCount,
		entry.CreatedAt.Format(time.RFC3339), entry.UpdatedAt.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("saving journal entry: %w", err)
	}
	return nil
}

// GetEntry retrieves an entry by ID.
func (s *journalStore) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, content, mood, tags, is_favorite, read_count, word_count, created_at, updated_at
		FROM journal_entries WHERE id = ?
	`, id)

	entry, err := scanEntry(row)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes an entry.
func (s *journalStore) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM journal_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListEntries returns entries ordered by creation time descending,
// optionally filtered by tag. Tag filtering happens in Go since tags
// are stored as a JSON array.
func (s *journalStore) ListEntries(ctx context.Context, tag string) ([]domain.JournalEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, content, mood, tags, is_favorite, read_count, word_count, created_at, updated_at
		FROM journal_entries
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		entry, err := scanEntryRows(rows)
		if err != nil {
			return nil, err
		}
		if tag != "" && !containsTag(entry.Tags, tag) {
			continue
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}

// CountEntries returns the number of stored entries.
func (s *journalStore) CountEntries(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM journal_entries")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting journal entries: %w", err)
	}
	return count, nil
}

// ==================== Exercise Store ====================

// exerciseStore implements driven.ExerciseStore.
type exerciseStore struct {
	store *Store
}

var _ driven.ExerciseStore = (*exerciseStore)(nil)

// SaveSession records a completed exercise session.
func (s *exerciseStore) SaveSession(ctx context.Context, session *domain.ExerciseSession) error {
	if session == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO exercise_sessions (id, exercise_id, completed_at, notes)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			exercise_id = excluded.exercise_id,
			completed_at = excluded.completed_at,
			notes = excluded.notes
	`, session.ID, session.ExerciseID, session.CompletedAt.Format(time.RFC3339), session.Notes)

	if err != nil {
		return fmt.Errorf("saving exercise session: %w", err)
	}
	return nil
}

// ListSessions returns sessions, most recent first.
func (s *exerciseStore) ListSessions(ctx context.Context, exerciseID string) ([]domain.ExerciseSession, error) {
	query := `
		SELECT id, exercise_id, completed_at, notes
		FROM exercise_sessions
	`
	args := []any{}
	if exerciseID != "" {
		query += " WHERE exercise_id = ?"
		args = append(args, exerciseID)
	}
	query += " ORDER BY completed_at DESC, id"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying exercise sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.ExerciseSession //nolint:prealloc // size unknown from query
	for rows.Next() {
		var session domain.ExerciseSession
		var completedAt string
		if err := rows.Scan(&session.ID, &session.ExerciseID, &completedAt, &session.Notes); err != nil {
			return nil, fmt.Errorf("scanning exercise session: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, completedAt); err == nil {
			session.CompletedAt = t
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercise sessions: %w", err)
	}
	return sessions, nil
}

// CountSessions returns the number of recorded sessions.
func (s *exerciseStore) CountSessions(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM exercise_sessions")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting exercise sessions: %w", err)
	}
	return count, nil
}

// ==================== Helper Functions ====================

// scanQuote scans a single quote row.
func scanQuote(row *sql.Row) (*domain.Quote, error) {
	var quote domain.Quote
	var isFavorite int
	var createdAt, updatedAt string

	if err := row.Scan(&quote.ID, &quote.Text, &quote.Author, &quote.Category,
		&isFavorite, &quote.ReadCount, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning quote: %w", err)
	}

	quote.IsFavorite = isFavorite == 1
	quote.CreatedAt = parseTime(createdAt)
	quote.UpdatedAt = parseTime(updatedAt)
	return &quote, nil
}

// scanQuoteRows scans a quote from *sql.Rows.
func scanQuoteRows(rows *sql.Rows) (*domain.Quote, error) {
	var quote domain.Quote
	var isFavorite int
	var createdAt, updatedAt string

	if err := rows.Scan(&quote.ID, &quote.Text, &quote.Author, &quote.Category,
		&isFavorite, &quote.ReadCount, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning quote: %w", err)
	}

	quote.IsFavorite = isFavorite == 1
	quote.CreatedAt = parseTime(createdAt)
	quote.UpdatedAt = parseTime(updatedAt)
	return &quote, nil
}

// scanEntry scans a single journal entry row.
func scanEntry(row *sql.Row) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	var mood, tagsJSON string
	var isFavorite int
	var createdAt, updatedAt string

	if err := row.Scan(&entry.ID, &entry.Title, &entry.Content, &mood, &tagsJSON,
		&isFavorite, &entry.ReadCount, &entry.WordCount, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}

	entry.Mood = domain.Mood(mood)
	if err := json.Unmarshal([]byte(tagsJSON), &entry.Tags); err != nil {
		return nil, fmt.Errorf("unmarshalling tags: %w", err)
	}
	entry.IsFavorite = isFavorite == 1
	entry.CreatedAt = parseTime(createdAt)
	entry.UpdatedAt = parseTime(updatedAt)
	return &entry, nil
}

// scanEntryRows scans a journal entry from *sql.Rows.
func scanEntryRows(rows *sql.Rows) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	var mood, tagsJSON string
	var isFavorite int
	var createdAt, updatedAt string

	if err := rows.Scan(&entry.ID, &entry.Title, &entry.Content, &mood, &tagsJSON,
		&isFavorite, &entry.ReadCount, &entry.WordCount, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}

	entry.Mood = domain.Mood(mood)
	if err := json.Unmarshal([]byte(tagsJSON), &entry.Tags); err != nil {
		return nil, fmt.Errorf("unmarshalling tags: %w", err)
	}
	entry.IsFavorite = isFavorite == 1
	entry.CreatedAt = parseTime(createdAt)
	entry.UpdatedAt = parseTime(updatedAt)
	return &entry, nil
}

// containsTag reports whether tags contains tag.
func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// parseTime parses an RFC3339 string, returning zero time on error.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatNullableTime formats a time to RFC3339 string, or returns nil for zero time.
func formatNullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}

// parseNullableTime parses a nullable RFC3339 string to time.Time.
// Returns zero time if the string is empty or invalid.
func parseNullableTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt converts a bool to 1 (true) or 0 (false).
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
