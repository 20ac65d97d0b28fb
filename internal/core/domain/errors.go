package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexUnavailable indicates the full-text index is not configured.
	// Indexed search falls back to in-memory ranking.
	ErrIndexUnavailable = errors.New("search index unavailable")

	// ErrStoreUnavailable indicates a required store is not configured.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrReminderRunning indicates the reminder scheduler is already running.
	ErrReminderRunning = errors.New("reminder scheduler already running")

	// ErrEmptyLibrary indicates an operation needs at least one quote.
	ErrEmptyLibrary = errors.New("quote library is empty")

	// ErrBackupVersion indicates a backup file has an unsupported version.
	ErrBackupVersion = errors.New("unsupported backup version")
)
