package domain

// SearchScope selects which record kinds a search covers.
type SearchScope string

// Search scopes.
const (
	ScopeAll     SearchScope = "all"
	ScopeQuotes  SearchScope = "quotes"
	ScopeJournal SearchScope = "journal"
)

// IsValid reports whether the scope is recognised.
func (s SearchScope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeQuotes, ScopeJournal:
		return true
	default:
		return false
	}
}

// SearchMode selects the retrieval strategy.
type SearchMode string

// Search modes.
const (
	// ModeAuto uses the full-text index when available and falls back
	// to in-memory ranking when it is not.
	ModeAuto SearchMode = "auto"

	// ModeIndexed forces the full-text index path.
	ModeIndexed SearchMode = "indexed"

	// ModeMemory forces in-memory BM25 ranking over a full candidate fetch.
	ModeMemory SearchMode = "memory"

	// ModeMerged runs both paths and fuses them by reciprocal rank.
	ModeMerged SearchMode = "merged"
)

// IsValid reports whether the mode is recognised. The empty string is
// not valid; callers default it to ModeAuto before validation.
func (m SearchMode) IsValid() bool {
	switch m {
	case ModeAuto, ModeIndexed, ModeMemory, ModeMerged:
		return true
	default:
		return false
	}
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Defaults to 20.
	Limit int

	// Offset is the number of results to skip.
	Offset int

	// Scope restricts the search to quotes or journal entries.
	// Defaults to ScopeAll.
	Scope SearchScope

	// Mode selects the retrieval strategy. Defaults to ModeAuto.
	Mode SearchMode
}

// ResultKind identifies the record type behind a search result.
type ResultKind string

// Result kinds.
const (
	KindQuote   ResultKind = "quote"
	KindJournal ResultKind = "journal"
)

// SearchResult represents a single search hit.
type SearchResult struct {
	// Kind identifies whether Quote or Entry is populated.
	Kind ResultKind

	// Quote is the matched quote when Kind is KindQuote.
	Quote *Quote

	// Entry is the matched journal entry when Kind is KindJournal.
	Entry *JournalEntry

	// Score is the relevance score.
	Score float64

	// Highlights contains snippets with matched terms.
	Highlights []string
}

// Title returns a short display title for the result.
func (r SearchResult) Title() string {
	switch r.Kind {
	case KindQuote:
		if r.Quote == nil {
			return ""
		}
		if r.Quote.Author != "" {
			return r.Quote.Author
		}
		return "Quote"
	case KindJournal:
		if r.Entry == nil {
			return ""
		}
		if r.Entry.Title != "" {
			return r.Entry.Title
		}
		return r.Entry.CreatedAt.Format("2 Jan 2006")
	default:
		return ""
	}
}

// Text returns the full matched text of the result.
func (r SearchResult) Text() string {
	switch r.Kind {
	case KindQuote:
		if r.Quote != nil {
			return r.Quote.Text
		}
	case KindJournal:
		if r.Entry != nil {
			return r.Entry.Content
		}
	}
	return ""
}
