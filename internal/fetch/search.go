package fetch

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/contact-cli/pkg/jina"
)

// searchScheme marks endpoints that carry a search query instead of a URL.
const searchScheme = "search:"

// SearchFetcher serves the general-search tier: it runs the query through
// Jina web search and concatenates the result snippets into one text block
// for the phone extractor.
type SearchFetcher struct {
	client jina.Client
}

// NewSearchFetcher creates a SearchFetcher backed by a Jina client.
func NewSearchFetcher(client jina.Client) *SearchFetcher {
	return &SearchFetcher{client: client}
}

func (s *SearchFetcher) Name() string { return "jina_search" }

// Supports accepts only search endpoints.
func (s *SearchFetcher) Supports(endpoint string) bool {
	return strings.HasPrefix(endpoint, searchScheme)
}

// Fetch runs the search and flattens titles, descriptions, and content of
// every hit into a single text block. Zero hits yield empty text, not an
// error: absent evidence, not a failure.
func (s *SearchFetcher) Fetch(ctx context.Context, endpoint string) (*Result, error) {
	query := strings.TrimPrefix(endpoint, searchScheme)

	resp, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, eris.Wrap(err, "jina_search: search")
	}

	var b strings.Builder
	for _, hit := range resp.Data {
		for _, part := range []string{hit.Title, hit.Description, hit.Content} {
			if part != "" {
				b.WriteString(part)
				b.WriteString("\n")
			}
		}
	}

	return &Result{
		Endpoint: endpoint,
		Text:     b.String(),
		Fetcher:  s.Name(),
	}, nil
}
