// Package ranking reorders candidate documents by query relevance.
//
// Two scorers are provided: a BM25-style ranker over a candidate list
// (Rank), and a cheap heuristic for scoring a single document (Score).
// Both are pure functions over in-memory data; they perform no I/O,
// never fail, and are safe for concurrent use. Candidate selection is
// the caller's job; Rank is a total reordering, not a filter.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/solace-labs/solace-cli/internal/textnorm"
)

// BM25 parameters.
const (
	k1 = 1.2  // term-frequency saturation
	b  = 0.75 // document-length normalisation
)

// DefaultAvgDocLength is the assumed average document length in tokens.
// It suits short texts like quotes; callers ranking longer documents
// (journal entries) should pass a corpus-appropriate value to
// RankWithAvgDocLength.
const DefaultAvgDocLength = 50.0

// Boost multipliers applied after BM25 scoring.
const (
	favoriteBoost  = 1.2
	usageBoostStep = 0.01 // per read, unbounded
)

// Document is the capability set the ranker requires of any domain
// record. Implementations must be cheap to call repeatedly.
type Document interface {
	// SearchID uniquely identifies the document.
	SearchID() string

	// PrimaryText is the main scoring text (quote text, entry content).
	PrimaryText() string

	// SecondaryText is optional auxiliary text (author, title).
	// Empty string when absent.
	SecondaryText() string

	// Favorite reports whether the user has favourited the document.
	Favorite() bool

	// UsageCount is how often the document has been read or used.
	UsageCount() int
}

// Rank reorders candidates by descending BM25 relevance for query using
// DefaultAvgDocLength. See RankWithAvgDocLength.
func Rank[D Document](candidates []D, query string) []D {
	return RankWithAvgDocLength(candidates, query, DefaultAvgDocLength)
}

// RankWithAvgDocLength reorders candidates by descending BM25 relevance.
//
// IDF is computed over the candidate set itself rather than a global
// corpus index: on-device corpora are small enough that a per-call pass
// beats maintaining an inverted index. A document "contains" a query
// term when the term appears anywhere in its normalised scoring text,
// regardless of token boundaries; term frequency, by contrast, counts
// exact token matches.
//
// After scoring, favourited documents are boosted ×1.2 and documents
// with a positive usage count ×(1 + count×0.01). Ties keep their input
// order. A blank query or empty candidate set returns the input
// unchanged.
func RankWithAvgDocLength[D Document](candidates []D, query string, avgDocLength float64) []D {
	queryTokens := textnorm.ExtractTokens(query)
	if len(candidates) == 0 || len(queryTokens) == 0 {
		return candidates
	}
	if avgDocLength <= 0 {
		avgDocLength = DefaultAvgDocLength
	}

	// Normalise each candidate's scoring text once.
	texts := make([]string, len(candidates))
	for i, doc := range candidates {
		texts[i] = textnorm.Normalize(scoringText(doc))
	}

	idf := make(map[string]float64, len(queryTokens))
	n := float64(len(candidates))
	for _, term := range queryTokens {
		if _, done := idf[term]; done {
			continue
		}
		containing := 0.0
		for _, text := range texts {
			if strings.Contains(text, term) {
				containing++
			}
		}
		idf[term] = math.Log((n-containing+0.5)/(containing+0.5) + 1)
	}

	scores := make([]float64, len(candidates))
	for i, doc := range candidates {
		docTokens := textnorm.ExtractTokens(texts[i])
		docLength := float64(len(docTokens))

		tf := make(map[string]int, len(docTokens))
		for _, tok := range docTokens {
			tf[tok]++
		}

		score := 0.0
		for term, weight := range idf {
			freq := float64(tf[term])
			if freq == 0 {
				continue
			}
			score += weight * freq * (k1 + 1) / (freq + k1*(1-b+b*(docLength/avgDocLength)))
		}

		if doc.Favorite() {
			score *= favoriteBoost
		}
		if count := doc.UsageCount(); count > 0 {
			score *= 1.0 + float64(count)*usageBoostStep
		}
		scores[i] = score
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	ranked := make([]D, len(candidates))
	for i, idx := range order {
		ranked[i] = candidates[idx]
	}
	return ranked
}

// Score computes a lightweight heuristic relevance score for a single
// document. Unlike Rank it does not consider the rest of the candidate
// set, and it applies no usage-count boost.
func Score(doc Document, query string) float64 {
	normalizedQuery := textnorm.Normalize(query)
	if normalizedQuery == "" {
		return 0
	}

	primary := textnorm.Normalize(doc.PrimaryText())
	secondary := textnorm.Normalize(doc.SecondaryText())

	score := 0.0
	if strings.Contains(primary, normalizedQuery) {
		score += 100
		if strings.HasPrefix(primary, normalizedQuery) {
			score += 50
		}
	}
	if secondary != "" && strings.Contains(secondary, normalizedQuery) {
		score += 75
	}

	docTokens := textnorm.ExtractTokens(doc.PrimaryText())
	for _, qt := range textnorm.ExtractTokens(query) {
		for _, dt := range docTokens {
			if strings.HasPrefix(dt, qt) {
				score += 10
				break // each query token counts at most once
			}
		}
	}

	if doc.Favorite() {
		score *= favoriteBoost
	}
	return score
}

// scoringText concatenates the primary and secondary fields into the
// text the ranker scores against.
func scoringText(doc Document) string {
	secondary := doc.SecondaryText()
	if secondary == "" {
		return doc.PrimaryText()
	}
	return doc.PrimaryText() + " " + secondary
}
