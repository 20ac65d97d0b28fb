package domain

import (
	"fmt"
	"strings"
	"time"
)

// Quote is a saved inspirational quote.
type Quote struct {
	// ID is the unique identifier for the quote.
	ID string

	// Text is the quote body.
	Text string

	// Author is the attributed author, empty when unknown.
	Author string

	// Category groups quotes (e.g. "gratitude", "resilience").
	Category string

	// IsFavorite marks the quote as a user favourite.
	IsFavorite bool

	// ReadCount is how many times the quote has been shown to the user.
	ReadCount int

	// CreatedAt is when the quote was added.
	CreatedAt time.Time

	// UpdatedAt is when the quote was last modified.
	UpdatedAt time.Time
}

// Validate checks that the quote is well-formed.
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: quote text is required", ErrInvalidInput)
	}
	return nil
}

// Quotes are rankable search documents.

// SearchID implements ranking.Document.
func (q Quote) SearchID() string { return q.ID }

// PrimaryText implements ranking.Document.
func (q Quote) PrimaryText() string { return q.Text }

// SecondaryText implements ranking.Document.
func (q Quote) SecondaryText() string { return q.Author }

// Favorite implements ranking.Document.
func (q Quote) Favorite() bool { return q.IsFavorite }

// UsageCount implements ranking.Document.
func (q Quote) UsageCount() int { return q.ReadCount }
