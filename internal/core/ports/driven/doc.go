// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - QuoteStore: quote persistence
//   - JournalStore: journal entry persistence
//   - ExerciseStore: exercise session persistence
//   - ReminderStore: reminder state and delivery history
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SearchIndex: full-text index (SQLite FTS5). Without it, search
//     falls back to in-memory BM25 ranking over a store fetch.
//   - Notifier: reminder delivery. Without it, reminders are skipped.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter package
package driven
