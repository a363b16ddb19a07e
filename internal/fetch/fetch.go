// Package fetch provides chained page fetching with plaintext extraction
// for the fallback source cascade.
package fetch

import (
	"context"
	"fmt"
)

// Result holds the extracted text of one fetched endpoint.
type Result struct {
	Endpoint   string
	Title      string
	Text       string
	StatusCode int
	Fetcher    string // e.g. "local_http", "jina", "jina_search"
}

// Fetcher retrieves one endpoint and returns its plaintext content.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) (*Result, error)
	Name() string
	Supports(endpoint string) bool
}

// StatusError reports a non-success HTTP status from an upstream page.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: status %d", e.Code)
}

// BlockedError reports anti-bot protection on an upstream page.
type BlockedError struct {
	Type BlockType
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("fetch: blocked (%s)", e.Type)
}
