// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - QuoteStore: Quote library persistence
//   - JournalStore: Journal entry persistence
//   - ExerciseStore: Exercise session persistence
//   - ReminderStore: Reminder schedule and history persistence
//   - SearchIndex: FTS5-backed full-text search
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. The FTS5 virtual tables live in the same database
// file as the row stores, which lets Rebuild repopulate the index with a
// single pass over the base tables.
//
// # Data Location
//
// By default, the database is stored at ~/.solace/data/solace.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
