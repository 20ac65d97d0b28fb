package domain

import "time"

// BackupVersion is the current backup file format version.
const BackupVersion = 1

// Backup is the JSON export/import document holding all user data.
type Backup struct {
	// Version is the backup format version.
	Version int `json:"version"`

	// ExportedAt is when the backup was created.
	ExportedAt time.Time `json:"exported_at"`

	// Quotes holds the full quote library.
	Quotes []Quote `json:"quotes"`

	// Entries holds all journal entries.
	Entries []JournalEntry `json:"entries"`

	// Sessions holds all exercise completions.
	Sessions []ExerciseSession `json:"sessions"`
}
