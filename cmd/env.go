package main

import (
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/contact-cli/internal/fetch"
	"github.com/sells-group/contact-cli/internal/resolver"
	"github.com/sells-group/contact-cli/internal/sourcepool"
	"github.com/sells-group/contact-cli/internal/sources"
	"github.com/sells-group/contact-cli/pkg/jina"
	"github.com/sells-group/contact-cli/pkg/rocketreach"
)

// initResolver wires clients, fetch chain, pool, and catalog from config.
func initResolver() (*resolver.Resolver, error) {
	catalog := sources.Default()
	if cfg.Resolve.SourcesPath != "" {
		loaded, err := sources.Load(cfg.Resolve.SourcesPath)
		if err != nil {
			return nil, eris.Wrap(err, "load source catalog")
		}
		catalog = loaded
	}

	fetchTimeout := time.Duration(cfg.Resolve.FetchTimeoutSecs) * time.Second

	jinaClient := jina.NewClient(cfg.Jina.Key,
		jina.WithBaseURL(cfg.Jina.BaseURL),
		jina.WithSearchBaseURL(cfg.Jina.SearchBaseURL),
	)

	chain := fetch.NewChain(
		fetch.NewSearchFetcher(jinaClient),
		fetch.NewLocalFetcher(fetchTimeout),
		fetch.NewJinaFetcher(jinaClient),
	)

	pool := sourcepool.New(chain, fetchTimeout, cfg.Resolve.MaxConcurrentFetches)

	var authoritative rocketreach.Client
	if cfg.RocketReach.Key != "" {
		perCall := rate.Limit(float64(cfg.RocketReach.CallsPerMinute) / 60.0)
		authoritative = rocketreach.NewClient(cfg.RocketReach.Key,
			rocketreach.WithBaseURL(cfg.RocketReach.BaseURL),
			rocketreach.WithRateLimit(perCall, 5),
		)
	}

	return resolver.New(authoritative, pool, catalog, resolver.Options{
		ScanAllTiers: cfg.Resolve.ScanAllTiers,
	}), nil
}
