package phone

import "regexp"

// Validation patterns, matched against the raw substring.
var (
	plainNationalRe = regexp.MustCompile(`^\d{3}[-.\s]?\d{3}[-.\s]?\d{4}$`)
	parenthesizedRe = regexp.MustCompile(`^\(\d{3}\)\s*\d{3}[-.\s]?\d{4}$`)
	internationalRe = regexp.MustCompile(`^\+\d{1,4}(?:[-.\s]?\(?\d{1,4}\)?)+$`)
)

// tollFreePrefixes are US prefixes that indicate a business line, which
// raises trust in a scraped number.
var tollFreePrefixes = map[string]bool{
	"800": true, "844": true, "855": true,
	"866": true, "877": true, "888": true,
}

// Additive signal weights; the total is capped at 1.0.
const (
	weightTenDigits     = 0.4
	weightPlainNational = 0.3
	weightParenthesized = 0.3
	weightInternational = 0.2
	weightTollFree      = 0.2
)

// Validate scores the plausibility of a raw phone-shaped match. It returns
// (false, 0) for digit counts outside [10,15], for obvious junk sequences,
// and for strings no recognizable pattern matched.
func Validate(raw string) (bool, float64) {
	digits := Digits(raw)
	if len(digits) < 10 || len(digits) > 15 {
		return false, 0
	}
	if isJunkSequence(digits) {
		return false, 0
	}

	national := NationalDigits(raw)
	score := 0.0
	if len(national) == 10 {
		score += weightTenDigits
	}
	if plainNationalRe.MatchString(raw) {
		score += weightPlainNational
	}
	if parenthesizedRe.MatchString(raw) {
		score += weightParenthesized
	}
	if internationalRe.MatchString(raw) {
		score += weightInternational
	}
	if len(national) == 10 && tollFreePrefixes[national[:3]] {
		score += weightTollFree
	}

	if score > 1.0 {
		score = 1.0
	}
	if score == 0 {
		// Length passed but nothing recognizable matched.
		return false, 0
	}
	return true, score
}

// isJunkSequence rejects all-identical digit strings and the canonical
// ascending/descending keyboard sequences.
func isJunkSequence(digits string) bool {
	if digits == "1234567890" || digits == "0123456789" {
		return true
	}
	first := digits[0]
	for i := 1; i < len(digits); i++ {
		if digits[i] != first {
			return false
		}
	}
	return true
}
