package phone

import "github.com/nyaruka/phonenumbers"

// defaultRegion is the region assumed for numbers without a country code.
const defaultRegion = "US"

// FormatE164 renders a phone string in E.164 via libphonenumber metadata.
// Used for numbers handed back by the authoritative lookup service, which
// arrive pre-verified but inconsistently formatted. Returns "" when the
// number cannot be parsed as a real, dialable number.
func FormatE164(raw string) string {
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(num) || !phonenumbers.IsValidNumber(num) {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
