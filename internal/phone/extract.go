// Package phone extracts, normalizes, and scores phone-shaped substrings
// from free text pulled off heterogeneous web sources.
package phone

import "regexp"

// Pattern families, in the order they are applied. Every family scans the
// full text; identical raw matches from different families are kept as-is
// since they normalize and score identically.
var patternFamilies = []*regexp.Regexp{
	// (415) 555-0100, (415)555 0100
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
	// 415-555-0100, 415.555.0100, 415 555 0100
	regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
	// +1 415 555 0100, +44 20 7946 0958
	regexp.MustCompile(`\+\d{1,4}[-.\s]?\(?\d{1,4}\)?(?:[-.\s]?\d{2,4}){1,4}`),
	// bare digit runs
	regexp.MustCompile(`\d{10,15}`),
}

// Extract scans text for phone-shaped substrings and returns every raw
// match across all pattern families. Pure function; no deduplication.
func Extract(text string) []string {
	if text == "" {
		return nil
	}
	var matches []string
	for _, re := range patternFamilies {
		matches = append(matches, re.FindAllString(text, -1)...)
	}
	return matches
}
