package phone

import (
	"fmt"
	"strings"
)

// countryCodeDigit is the trunk country code for the default region (US).
const countryCodeDigit = '1'

// Digits strips every non-digit character from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NationalDigits returns the digit string with a leading default-region
// country code removed, so "14155550100" and "4155550100" compare equal.
func NationalDigits(raw string) string {
	d := Digits(raw)
	if len(d) == 11 && d[0] == countryCodeDigit {
		return d[1:]
	}
	return d
}

// Normalize canonicalizes a raw phone-shaped string. Exactly ten national
// digits render as "(XXX) XXX-XXXX"; longer numbers render as "+<digits>";
// anything else comes back as the bare digit string, which signals a likely
// invalid length downstream. Idempotent for already-normalized numbers.
func Normalize(raw string) string {
	d := NationalDigits(raw)
	switch {
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	case len(d) > 10:
		return "+" + d
	default:
		return d
	}
}
