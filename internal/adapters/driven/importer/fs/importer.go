// Package fs imports journal entries from plain text files.
//
// Each .txt or .md file in a directory becomes one journal entry. The
// filename (minus extension) is used as the title unless a Markdown
// file opens with a level-one heading, in which case the heading wins.
// Watch mode keeps a directory under observation and imports files as
// they appear, throttled so a bulk copy into the directory does not
// hammer the store.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
	"github.com/solace-labs/solace-cli/internal/logger"
)

const (
	// importRate throttles watch-mode imports (files per second).
	importRate = 5

	// importBurst allows a small batch through before throttling.
	importBurst = 10
)

// Result reports the outcome of importing a single file.
type Result struct {
	// Path is the file that was processed.
	Path string

	// Entry is the stored entry, nil when the import failed.
	Entry *domain.JournalEntry

	// Err is the import error, nil on success.
	Err error
}

// Importer converts text files into journal entries.
type Importer struct {
	journal driving.JournalService
	limiter *rate.Limiter

	mu     sync.Mutex
	closed bool
}

// NewImporter creates an importer that stores entries via journal.
func NewImporter(journal driving.JournalService) *Importer {
	return &Importer{
		journal: journal,
		limiter: rate.NewLimiter(rate.Limit(importRate), importBurst),
	}
}

// ImportDir imports every .txt and .md file directly inside dir.
// It returns the entries that were stored and the first error that
// stopped the walk; individual file failures are logged and skipped.
func (i *Importer) ImportDir(ctx context.Context, dir string) ([]domain.JournalEntry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imported []domain.JournalEntry
	for _, f := range files {
		if f.IsDir() || !isImportable(f.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return imported, err
		}

		path := filepath.Join(dir, f.Name())
		entry, err := i.importFile(ctx, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}
		imported = append(imported, *entry)
	}

	logger.Info("Imported %d entries from %s", len(imported), dir)
	return imported, nil
}

// Watch observes dir and imports .txt/.md files as they are created or
// written. Results are delivered on the returned channel, which closes
// when ctx is cancelled. Imports are rate limited so dropping a large
// batch of files into the directory is absorbed gradually.
func (i *Importer) Watch(ctx context.Context, dir string) (<-chan Result, error) {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return nil, fmt.Errorf("importer is closed")
	}
	i.mu.Unlock()

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch path error: %s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	results := make(chan Result)
	go i.watchLoop(ctx, watcher, results)

	logger.Info("Watching %s for journal files", dir)
	return results, nil
}

// Close marks the importer as closed. Active watches stop via their
// context.
func (i *Importer) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.closed = true
}

func (i *Importer) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, results chan<- Result) {
	defer close(results)
	defer watcher.Close()

	// A file copy typically raises Create followed by one or more
	// Writes. Remember what was already imported this session so the
	// trailing Writes do not produce duplicate entries.
	seen := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !isImportable(event.Name) || seen[event.Name] {
				continue
			}

			if err := i.limiter.Wait(ctx); err != nil {
				return
			}

			entry, err := i.importFile(ctx, event.Name)
			if err == nil {
				seen[event.Name] = true
			}
			select {
			case results <- Result{Path: event.Name, Entry: entry, Err: err}:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// importFile reads one file and stores it as a journal entry dated at
// the file's modification time.
func (i *Importer) importFile(ctx context.Context, path string) (*domain.JournalEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	title, content := splitTitle(path, string(data))
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: file has no content", domain.ErrInvalidInput)
	}

	entry, err := i.journal.Add(ctx, domain.JournalEntry{
		Title:     title,
		Content:   content,
		CreatedAt: info.ModTime().UTC(),
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Imported %s as entry %s", path, entry.ID)
	return entry, nil
}

// splitTitle derives the entry title. A Markdown level-one heading on
// the first line becomes the title and is removed from the content;
// otherwise the filename without its extension is used.
func splitTitle(path, raw string) (title, content string) {
	name := filepath.Base(path)
	title = strings.TrimSuffix(name, filepath.Ext(name))
	content = raw

	if strings.EqualFold(filepath.Ext(name), ".md") {
		first, rest, found := strings.Cut(raw, "\n")
		if heading, ok := strings.CutPrefix(strings.TrimSpace(first), "# "); ok && heading != "" {
			title = strings.TrimSpace(heading)
			if found {
				content = strings.TrimLeft(rest, "\n")
			} else {
				content = ""
			}
		}
	}

	return title, content
}

func isImportable(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md":
		return true
	default:
		return false
	}
}
