package sources

import (
	"net/url"
	"strings"

	"github.com/sells-group/contact-cli/internal/model"
)

// searchScheme marks endpoints served by the search fetcher rather than a
// page fetch. The remainder of the template is the search query.
const searchScheme = "search:"

// Expand fills a source's endpoint template from the query. HTTP templates
// get query-escaped values; search templates keep raw text since the query
// travels as a request body, not a URL path.
func Expand(src model.SourceDescriptor, q model.ContactQuery) string {
	tmpl := src.EndpointTemplate
	if strings.HasPrefix(tmpl, searchScheme) {
		r := strings.NewReplacer(
			"{person}", q.PersonName,
			"{company}", q.CompanyName,
			"{domain}", q.CompanyDomain(),
		)
		return r.Replace(tmpl)
	}
	r := strings.NewReplacer(
		"{person}", url.QueryEscape(q.PersonName),
		"{company}", url.QueryEscape(q.CompanyName),
		"{domain}", q.CompanyDomain(),
	)
	return r.Replace(tmpl)
}

// IsSearch reports whether an expanded endpoint is a search query rather
// than a fetchable URL.
func IsSearch(endpoint string) bool {
	return strings.HasPrefix(endpoint, searchScheme)
}

// SearchQuery strips the search scheme from an expanded endpoint.
func SearchQuery(endpoint string) string {
	return strings.TrimPrefix(endpoint, searchScheme)
}
