package domain

import (
	"fmt"
	"strings"
	"time"
)

// Mood is a coarse emotional state recorded with a journal entry.
type Mood string

// Recognised moods. An empty mood is valid (not recorded).
const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodLow     Mood = "low"
	MoodBad     Mood = "bad"
)

// ValidMoods lists the recognised moods in display order.
var ValidMoods = []Mood{MoodGreat, MoodGood, MoodNeutral, MoodLow, MoodBad}

// IsValid reports whether the mood is empty or one of the recognised values.
func (m Mood) IsValid() bool {
	if m == "" {
		return true
	}
	for _, v := range ValidMoods {
		if m == v {
			return true
		}
	}
	return false
}

// JournalEntry is a dated personal journal entry.
type JournalEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Title is an optional short title.
	Title string

	// Content is the entry body.
	Content string

	// Mood is the mood recorded with the entry, empty when not set.
	Mood Mood

	// Tags are free-form labels attached to the entry.
	Tags []string

	// IsFavorite marks the entry as a user favourite.
	IsFavorite bool

	// ReadCount is how many times the entry has been reopened.
	ReadCount int

	// WordCount is the token count of Content, maintained on save.
	WordCount int

	// CreatedAt is when the entry was written.
	CreatedAt time.Time

	// UpdatedAt is when the entry was last modified.
	UpdatedAt time.Time
}

// Validate checks that the entry is well-formed.
func (e *JournalEntry) Validate() error {
	if strings.TrimSpace(e.Content) == "" {
		return fmt.Errorf("%w: entry content is required", ErrInvalidInput)
	}
	if !e.Mood.IsValid() {
		return fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, e.Mood)
	}
	return nil
}

// NormalizeTags trims, lowercases, and deduplicates the entry's tags
// in place, preserving first-seen order.
func (e *JournalEntry) NormalizeTags() {
	seen := make(map[string]struct{}, len(e.Tags))
	out := e.Tags[:0]
	for _, tag := range e.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	e.Tags = out
}

// Journal entries are rankable search documents.

// SearchID implements ranking.Document.
func (e JournalEntry) SearchID() string { return e.ID }

// PrimaryText implements ranking.Document.
func (e JournalEntry) PrimaryText() string { return e.Content }

// SecondaryText implements ranking.Document.
func (e JournalEntry) SecondaryText() string { return e.Title }

// Favorite implements ranking.Document.
func (e JournalEntry) Favorite() bool { return e.IsFavorite }

// UsageCount implements ranking.Document.
func (e JournalEntry) UsageCount() int { return e.ReadCount }
