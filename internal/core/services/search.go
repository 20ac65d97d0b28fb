package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/solace-labs/solace-cli/internal/core/domain"
	"github.com/solace-labs/solace-cli/internal/core/ports/driven"
	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
	"github.com/solace-labs/solace-cli/internal/logger"
	"github.com/solace-labs/solace-cli/internal/ranking"
	"github.com/solace-labs/solace-cli/internal/textnorm"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// scoredHit holds intermediate search results before hydration.
type scoredHit struct {
	kind   domain.ResultKind
	id     string
	score  float64
	rank   int    // position within the hit's own ranked list
	source string // "indexed", "memory", or "merged"
}

// SearchService composes the two retrieval paths: the SQLite FTS5 index
// and the in-memory BM25 ranker over a store fetch.
type SearchService struct {
	quoteStore   driven.QuoteStore
	journalStore driven.JournalStore
	index        driven.SearchIndex

	quoteAvgDocLength   float64
	journalAvgDocLength float64
	defaultLimit        int
}

// NewSearchService creates a search service. The index is optional;
// without it every search uses the in-memory ranker.
func NewSearchService(
	quoteStore driven.QuoteStore,
	journalStore driven.JournalStore,
	index driven.SearchIndex,
) *SearchService {
	return &SearchService{
		quoteStore:          quoteStore,
		journalStore:        journalStore,
		index:               index,
		quoteAvgDocLength:   ranking.DefaultAvgDocLength,
		journalAvgDocLength: 250.0,
		defaultLimit:        20,
	}
}

// SetDefaultLimit overrides the result limit applied when a search
// request does not specify one.
func (s *SearchService) SetDefaultLimit(limit int) {
	if limit > 0 {
		s.defaultLimit = limit
	}
}

// SetAvgDocLengths overrides the assumed average document lengths used
// by the in-memory ranker.
func (s *SearchService) SetAvgDocLengths(quote, journal float64) {
	if quote > 0 {
		s.quoteAvgDocLength = quote
	}
	if journal > 0 {
		s.journalAvgDocLength = journal
	}
}

// Search ranks quotes and journal entries by relevance to query.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	// Return empty for empty query
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	scope := opts.Scope
	if scope == "" {
		scope = domain.ScopeAll
	}
	logger.Debug("Limit: %d, Offset: %d, Scope: %s", limit, opts.Offset, scope)

	// Request more results internally to survive offset trimming.
	internalLimit := (limit + opts.Offset) * 2

	mode := s.effectiveMode(opts)
	logger.Info("Effective search mode: %s", mode)

	var hits []scoredHit
	var err error

	switch mode {
	case domain.ModeIndexed:
		hits, err = s.indexedSearch(ctx, query, scope, internalLimit)
		if err != nil {
			// The index path failing is not fatal: degrade to the
			// in-memory ranker over a store fetch.
			logger.Warn("Indexed search failed, falling back to in-memory: %v", err)
			hits, err = s.memorySearch(ctx, query, scope)
		}

	case domain.ModeMerged:
		hits, err = s.mergedSearch(ctx, query, scope, internalLimit)

	default:
		hits, err = s.memorySearch(ctx, query, scope)
	}

	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Debug("Raw results: %d hits", len(hits))

	results, err := s.hydrateResults(ctx, hits, query)
	if err != nil {
		return nil, fmt.Errorf("hydrate results: %w", err)
	}

	results = applyPagination(results, opts.Offset, limit)
	logger.Info("Final results: %d", len(results))

	return results, nil
}

// effectiveMode resolves the requested mode against available services,
// degrading to in-memory ranking when the index is not configured.
func (s *SearchService) effectiveMode(opts domain.SearchOptions) domain.SearchMode {
	switch opts.Mode {
	case domain.ModeMemory:
		return domain.ModeMemory
	case domain.ModeIndexed, domain.ModeMerged:
		if s.index == nil {
			logger.Debug("Index unavailable, degrading %s to memory", opts.Mode)
			return domain.ModeMemory
		}
		return opts.Mode
	default: // ModeAuto or unset
		if s.index != nil {
			return domain.ModeIndexed
		}
		return domain.ModeMemory
	}
}

// indexedSearch queries the FTS5 index.
func (s *SearchService) indexedSearch(
	ctx context.Context, query string, scope domain.SearchScope, limit int,
) ([]scoredHit, error) {
	if s.index == nil {
		return nil, domain.ErrIndexUnavailable
	}

	logger.Debug("Indexed search: query=%q, limit=%d", query, limit)

	indexHits, err := s.index.Search(ctx, query, scope, limit)
	if err != nil {
		return nil, fmt.Errorf("indexed search: %w", err)
	}

	logger.Debug("Indexed search: %d hits", len(indexHits))

	hits := make([]scoredHit, len(indexHits))
	for i, hit := range indexHits {
		hits[i] = scoredHit{
			kind:   hit.Kind,
			id:     hit.ID,
			score:  hit.Score,
			source: "indexed",
		}
	}
	return hits, nil
}

// memorySearch fetches candidates from the stores, filters them down to
// documents containing at least one query token, and orders them by the
// BM25 ranker. Display scores come from the heuristic scorer.
func (s *SearchService) memorySearch(
	ctx context.Context, query string, scope domain.SearchScope,
) ([]scoredHit, error) {
	var hits []scoredHit

	if scope == domain.ScopeAll || scope == domain.ScopeQuotes {
		if s.quoteStore == nil {
			return nil, fmt.Errorf("%w: quote store", domain.ErrStoreUnavailable)
		}
		quotes, err := s.quoteStore.ListQuotes(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("list quotes: %w", err)
		}
		candidates := filterCandidates(quotes, query)
		ranked := ranking.RankWithAvgDocLength(candidates, query, s.quoteAvgDocLength)
		for i, q := range ranked {
			hits = append(hits, scoredHit{
				kind:   domain.KindQuote,
				id:     q.ID,
				score:  ranking.Score(q, query),
				rank:   i,
				source: "memory",
			})
		}
	}

	if scope == domain.ScopeAll || scope == domain.ScopeJournal {
		if s.journalStore == nil {
			return nil, fmt.Errorf("%w: journal store", domain.ErrStoreUnavailable)
		}
		entries, err := s.journalStore.ListEntries(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("list entries: %w", err)
		}
		candidates := filterCandidates(entries, query)
		ranked := ranking.RankWithAvgDocLength(candidates, query, s.journalAvgDocLength)
		for i, e := range ranked {
			hits = append(hits, scoredHit{
				kind:   domain.KindJournal,
				id:     e.ID,
				score:  ranking.Score(e, query),
				rank:   i,
				source: "memory",
			})
		}
	}

	// Ordering follows the BM25 ranker: with ScopeAll the two ranked
	// lists are interleaved by per-kind rank (quotes first on ties, as
	// the sort is stable). The heuristic score is carried for display
	// and must not influence the ordering.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].rank < hits[j].rank
	})

	logger.Debug("Memory search: %d hits", len(hits))
	return hits, nil
}

// mergedSearch runs both paths and fuses them with reciprocal rank
// fusion.
func (s *SearchService) mergedSearch(
	ctx context.Context, query string, scope domain.SearchScope, limit int,
) ([]scoredHit, error) {
	indexed, indexedErr := s.indexedSearch(ctx, query, scope, limit)
	memory, memoryErr := s.memorySearch(ctx, query, scope)

	// Degrade gracefully if one path fails.
	if indexedErr != nil && memoryErr != nil {
		return nil, fmt.Errorf("merged search: indexed=%w, memory=%w", indexedErr, memoryErr)
	}
	if indexedErr != nil {
		logger.Warn("Merged search: indexed path failed, using memory results only")
		return memory, nil
	}
	if memoryErr != nil {
		logger.Warn("Merged search: memory path failed, using indexed results only")
		return indexed, nil
	}

	logger.Debug("Merged search: fusing %d indexed + %d memory results", len(indexed), len(memory))
	return reciprocalRankFusion(indexed, memory, 60), nil
}

// reciprocalRankFusion merges two ranked lists. k is the constant
// (typically 60) that keeps top ranks from dominating.
func reciprocalRankFusion(list1, list2 []scoredHit, k int) []scoredHit {
	type key struct {
		kind domain.ResultKind
		id   string
	}

	scores := make(map[key]float64)
	order := make([]key, 0, len(list1)+len(list2))
	kinds := make(map[key]scoredHit)

	accumulate := func(list []scoredHit) {
		for rank, hit := range list {
			kk := key{kind: hit.kind, id: hit.id}
			if _, seen := scores[kk]; !seen {
				order = append(order, kk)
				kinds[kk] = hit
			}
			scores[kk] += 1.0 / float64(k+rank+1)
		}
	}
	accumulate(list1)
	accumulate(list2)

	merged := make([]scoredHit, 0, len(order))
	for _, kk := range order {
		merged = append(merged, scoredHit{
			kind:   kinds[kk].kind,
			id:     kk.id,
			score:  scores[kk],
			source: "merged",
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].score > merged[j].score
	})
	return merged
}

// filterCandidates keeps documents whose normalised scoring text
// contains at least one query token as a substring. Candidate
// selection happens here so the ranker itself remains a total
// reordering.
func filterCandidates[D ranking.Document](docs []D, query string) []D {
	tokens := textnorm.ExtractTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	filtered := make([]D, 0, len(docs))
	for _, doc := range docs {
		text := textnorm.Normalize(doc.PrimaryText() + " " + doc.SecondaryText())
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				filtered = append(filtered, doc)
				break
			}
		}
	}
	return filtered
}

// hydrateResults converts hits into full SearchResult values.
func (s *SearchService) hydrateResults(
	ctx context.Context, hits []scoredHit, query string,
) ([]domain.SearchResult, error) {
	results := make([]domain.SearchResult, 0, len(hits))

	for _, hit := range hits {
		switch hit.kind {
		case domain.KindQuote:
			quote, err := s.quoteStore.GetQuote(ctx, hit.id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue // deleted since indexing, skip
				}
				return nil, fmt.Errorf("get quote %s: %w", hit.id, err)
			}
			results = append(results, domain.SearchResult{
				Kind:       domain.KindQuote,
				Quote:      quote,
				Score:      hit.score,
				Highlights: generateHighlights(quote.Text, query),
			})

		case domain.KindJournal:
			entry, err := s.journalStore.GetEntry(ctx, hit.id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("get entry %s: %w", hit.id, err)
			}
			results = append(results, domain.SearchResult{
				Kind:       domain.KindJournal,
				Entry:      entry,
				Score:      hit.score,
				Highlights: generateHighlights(entry.Content, query),
			})
		}
	}

	return results, nil
}

// generateHighlights creates up to three sentence snippets containing
// query terms.
func generateHighlights(content, query string) []string {
	queryTerms := textnorm.ExtractTokens(query)
	if len(queryTerms) == 0 {
		return nil
	}

	var highlights []string
	for _, sentence := range splitSentences(content) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		normalized := textnorm.Normalize(sentence)
		for _, term := range queryTerms {
			if strings.Contains(normalized, term) {
				highlight := sentence
				if runes := []rune(highlight); len(runes) > 200 {
					highlight = string(runes[:200]) + "..."
				}
				highlights = append(highlights, highlight)
				break
			}
		}

		if len(highlights) >= 3 {
			break
		}
	}
	return highlights
}

// splitSentences splits content into sentences by common terminators.
func splitSentences(content string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range content {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			s := strings.TrimSpace(current.String())
			if s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// applyPagination applies offset and limit to results.
func applyPagination(results []domain.SearchResult, offset, limit int) []domain.SearchResult {
	if offset >= len(results) {
		return []domain.SearchResult{}
	}

	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
