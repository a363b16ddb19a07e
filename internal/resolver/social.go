package resolver

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/contact-cli/internal/model"
)

var lowerCaser = cases.Lower(language.Und)

// socialProfiles templates profile URL guesses from the query strings.
// They are never fetched or validated and carry no confidence of their
// own; they exist so the caller has somewhere to start looking.
func socialProfiles(q model.ContactQuery) map[string]string {
	lower := lowerCaser.String(q.PersonName)
	return map[string]string{
		"linkedin": "https://linkedin.com/in/" + strings.ReplaceAll(lower, " ", "-"),
		"twitter":  "https://twitter.com/" + strings.ReplaceAll(lower, " ", ""),
	}
}

// guessEmail templates a first.last@companydomain guess, the common
// corporate address convention. A guess, not a resolved fact.
func guessEmail(q model.ContactQuery) string {
	person := strings.ReplaceAll(lowerCaser.String(q.PersonName), " ", ".")
	company := strings.ReplaceAll(lowerCaser.String(q.CompanyName), " ", "")
	return person + "@" + company + ".com"
}
