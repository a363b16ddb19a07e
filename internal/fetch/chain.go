package fetch

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Chain tries fetchers in priority order, returning the first success.
type Chain struct {
	fetchers []Fetcher
}

// NewChain creates a Chain. Fetchers are tried in order; the first
// successful result wins.
func NewChain(fetchers ...Fetcher) *Chain {
	return &Chain{fetchers: fetchers}
}

// Fetch tries each fetcher that supports the endpoint. Returns the first
// successful result, or the last error if every fetcher fails.
func (c *Chain) Fetch(ctx context.Context, endpoint string) (*Result, error) {
	var lastErr error
	for _, f := range c.fetchers {
		if !f.Supports(endpoint) {
			continue
		}
		result, err := f.Fetch(ctx, endpoint)
		if err == nil && result != nil {
			return result, nil
		}
		if err != nil {
			zap.L().Debug("fetch: fetcher failed, trying next",
				zap.String("fetcher", f.Name()),
				zap.String("endpoint", endpoint),
				zap.Error(err),
			)
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, eris.Errorf("fetch: no suitable fetcher for endpoint: %s", endpoint)
}
