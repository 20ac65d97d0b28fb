// Package textnorm provides Unicode-aware text normalisation and
// tokenisation used by the search pipeline. All functions are pure and
// safe for concurrent use.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, removes nonspacing marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize produces the canonical form of text used for matching and
// indexing: lowercase, NFKC-normalised, diacritic-free, with whitespace
// runs collapsed to a single space.
//
// The order matters: lowercasing before decomposition keeps
// case-dependent diacritic forms from surviving the strip, and NFKC can
// introduce compatibility-decomposed marks that must then be removed.
// Normalize is idempotent.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = norm.NFKC.String(s)
	// NFKC can surface uppercase compatibility forms (e.g. ℃ -> °C).
	s = strings.ToLower(s)
	s = RemoveDiacritics(s)
	return strings.Join(strings.Fields(s), " ")
}

// RemoveDiacritics strips combining marks from text, so "café" becomes
// "cafe". The rest of the string is left untouched.
func RemoveDiacritics(text string) string {
	result, _, err := transform.String(stripMarks, text)
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to the input.
		return text
	}
	return result
}

// ExtractTokens splits text into lowercase alphanumeric tokens. Every
// rune that is neither a letter, a digit, nor whitespace acts as a
// separator. The result is never nil.
func ExtractTokens(text string) []string {
	normalized := Normalize(text)

	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, normalized)

	tokens := strings.Fields(mapped)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// PrepareSearchQuery converts a raw user query into a prefix-match query
// for the full-text index ("hope faith" -> "hope* faith*"). Queries that
// normalise to fewer than two runes are returned as-is: a single-rune
// wildcard would match almost everything.
func PrepareSearchQuery(query string) string {
	normalized := Normalize(query)
	if utf8.RuneCountInString(normalized) < 2 {
		return normalized
	}

	tokens := ExtractTokens(query)
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok + "*"
	}
	return strings.Join(parts, " ")
}

// WordCount returns the number of tokens in text.
func WordCount(text string) int {
	return len(ExtractTokens(text))
}
