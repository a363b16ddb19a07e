// Package sourcepool fans out fetches for the sources of one fallback
// tier, with per-fetch timeouts and full isolation between sources.
package sourcepool

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/contact-cli/internal/fetch"
	"github.com/sells-group/contact-cli/internal/model"
	"github.com/sells-group/contact-cli/internal/sources"
)

const defaultFetchTimeout = 5 * time.Second

// Pool fetches tier sources concurrently through a fetch chain.
type Pool struct {
	chain         *fetch.Chain
	fetchTimeout  time.Duration
	maxConcurrent int
}

// New creates a Pool. A non-positive timeout falls back to 5 seconds.
func New(chain *fetch.Chain, fetchTimeout time.Duration, maxConcurrent int) *Pool {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}
	return &Pool{
		chain:         chain,
		fetchTimeout:  fetchTimeout,
		maxConcurrent: maxConcurrent,
	}
}

// FetchTier fetches every source of one tier concurrently and returns a
// result per source once all fetches have settled. A failed source is
// recorded with its error kind, never propagated; one source can neither
// abort nor delay the others beyond its own timeout.
func (p *Pool) FetchTier(ctx context.Context, query model.ContactQuery, tier []model.SourceDescriptor) []model.RawSourceResult {
	results := make([]model.RawSourceResult, len(tier))
	p.fanOut(ctx, query, tier, func(i int, res model.RawSourceResult) {
		results[i] = res
	})
	return results
}

// FetchTierFunc streams results to fn as each source settles, from the
// fetching goroutine. fn must be safe for concurrent calls. Cancelling ctx
// abandons sources that have not started and cuts short in-flight fetches.
func (p *Pool) FetchTierFunc(ctx context.Context, query model.ContactQuery, tier []model.SourceDescriptor, fn func(model.RawSourceResult)) {
	p.fanOut(ctx, query, tier, func(_ int, res model.RawSourceResult) {
		fn(res)
	})
}

func (p *Pool) fanOut(ctx context.Context, query model.ContactQuery, tier []model.SourceDescriptor, emit func(int, model.RawSourceResult)) {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxConcurrent)

	for i, src := range tier {
		i, src := i, src
		g.Go(func() error {
			emit(i, p.fetchOne(gCtx, query, src))
			return nil
		})
	}
	_ = g.Wait()
}

// fetchOne fetches a single source with its own timeout. Panics while
// fetching or extracting one source's text are converted to an empty
// result so the all-sources-isolated guarantee holds.
func (p *Pool) fetchOne(ctx context.Context, query model.ContactQuery, src model.SourceDescriptor) (res model.RawSourceResult) {
	res = model.RawSourceResult{Source: src}

	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("sourcepool: panic while fetching source",
				zap.String("source", src.Name),
				zap.Any("panic", r),
			)
			res = model.RawSourceResult{Source: src, FetchErr: model.ErrConnection}
		}
	}()

	fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	endpoint := sources.Expand(src, query)
	result, err := p.chain.Fetch(fetchCtx, endpoint)
	if err != nil {
		kind := fetch.Classify(err)
		zap.L().Debug("sourcepool: source fetch failed",
			zap.String("source", src.Name),
			zap.String("endpoint", endpoint),
			zap.String("error_kind", string(kind)),
			zap.Error(err),
		)
		res.FetchErr = kind
		return res
	}

	res.Text = result.Text
	return res
}
