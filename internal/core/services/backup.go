package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
	"github.com/solace-labs/solace-cli/internal/logger"
)

// Ensure BackupService implements the interface.
var _ driving.BackupService = (*BackupService)(nil)

// BackupService exports and imports the full dataset as a JSON
// document.
type BackupService struct {
	quoteStore    driven.QuoteStore
	journalStore  driven.JournalStore
	exerciseStore driven.ExerciseStore
	index         driven.SearchIndex
}

// NewBackupService creates a new backup service. The index is
// optional; imports still succeed when it is nil.
func NewBackupService(
	quoteStore driven.QuoteStore,
	journalStore driven.JournalStore,
	exerciseStore driven.ExerciseStore,
	index driven.SearchIndex,
) *BackupService {
	return &BackupService{
		quoteStore:    quoteStore,
		journalStore:  journalStore,
		exerciseStore: exerciseStore,
		index:         index,
	}
}

// Export writes all quotes, journal entries and exercise sessions as
// an indented JSON document.
func (s *BackupService) Export(ctx context.Context, w io.Writer) error {
	quotes, err := s.quoteStore.ListQuotes(ctx, "")
	if err != nil {
		return fmt.Errorf("list quotes: %w", err)
	}

	entries, err := s.journalStore.ListEntries(ctx, "")
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	sessions, err := s.exerciseStore.ListSessions(ctx, "")
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	backup := domain.Backup{
		Version:    domain.BackupVersion,
		ExportedAt: time.Now().UTC(),
		Quotes:     quotes,
		Entries:    entries,
		Sessions:   sessions,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}

	logger.Info("Exported %d quotes, %d entries, %d sessions",
		len(quotes), len(entries), len(sessions))
	return nil
}

// Import reads a backup document, stores every record and re-indexes
// quotes and entries. Existing records with the same IDs are
// overwritten.
func (s *BackupService) Import(ctx context.Context, r io.Reader) (*domain.Backup, error) {
	var backup domain.Backup
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}

	if backup.Version != domain.BackupVersion {
		return nil, fmt.Errorf("%w: got version %d, want %d",
			domain.ErrBackupVersion, backup.Version, domain.BackupVersion)
	}

	for i := range backup.Quotes {
		quote := backup.Quotes[i]
		if err := quote.Validate(); err != nil {
			return nil, fmt.Errorf("quote %s: %w", quote.ID, err)
		}
		if err := s.quoteStore.SaveQuote(ctx, &quote); err != nil {
			return nil, fmt.Errorf("save quote %s: %w", quote.ID, err)
		}
		if s.index != nil {
			if err := s.index.IndexQuote(ctx, quote); err != nil {
				logger.Warn("Failed to index quote %s: %v", quote.ID, err)
			}
		}
	}

	for i := range backup.Entries {
		entry := backup.Entries[i]
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.ID, err)
		}
		if err := s.journalStore.SaveEntry(ctx, &entry); err != nil {
			return nil, fmt.Errorf("save entry %s: %w", entry.ID, err)
		}
		if s.index != nil {
			if err := s.index.IndexEntry(ctx, entry); err != nil {
				logger.Warn("Failed to index entry %s: %v", entry.ID, err)
			}
		}
	}

	for i := range backup.Sessions {
		session := backup.Sessions[i]
		if err := s.exerciseStore.SaveSession(ctx, &session); err != nil {
			return nil, fmt.Errorf("save session %s: %w", session.ID, err)
		}
	}

	logger.Info("Imported %d quotes, %d entries, %d sessions",
		len(backup.Quotes), len(backup.Entries), len(backup.Sessions))
	return &backup, nil
}
