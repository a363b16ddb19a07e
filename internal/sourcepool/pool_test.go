package sourcepool

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/contact-cli/internal/fetch"
	"github.com/sells-group/contact-cli/internal/model"
)

// scriptedFetcher returns a canned outcome per endpoint substring.
type scriptedFetcher struct {
	outcomes map[string]outcome
}

type outcome struct {
	text  string
	err   error
	delay time.Duration
	panic bool
}

func (f *scriptedFetcher) Name() string         { return "scripted" }
func (f *scriptedFetcher) Supports(string) bool { return true }
func (f *scriptedFetcher) Fetch(ctx context.Context, endpoint string) (*fetch.Result, error) {
	for key, o := range f.outcomes {
		if !strings.Contains(endpoint, key) {
			continue
		}
		if o.panic {
			panic("scripted panic")
		}
		if o.delay > 0 {
			select {
			case <-time.After(o.delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		if o.err != nil {
			return nil, o.err
		}
		return &fetch.Result{Endpoint: endpoint, Text: o.text, Fetcher: f.Name()}, nil
	}
	return &fetch.Result{Endpoint: endpoint, Fetcher: f.Name()}, nil
}

func testTier() []model.SourceDescriptor {
	return []model.SourceDescriptor{
		{Name: "Company Website (/contact)", EndpointTemplate: "https://{domain}/contact", BaseWeight: 0.9, Tier: 2},
		{Name: "Company Website (/about)", EndpointTemplate: "https://{domain}/about", BaseWeight: 0.8, Tier: 2},
		{Name: "Company Website (/team)", EndpointTemplate: "https://{domain}/team", BaseWeight: 0.8, Tier: 2},
	}
}

func testQuery() model.ContactQuery {
	return model.ContactQuery{PersonName: "Jane Doe", CompanyName: "Acme Corp"}
}

func TestFetchTier_AllSucceed(t *testing.T) {
	t.Parallel()

	f := &scriptedFetcher{outcomes: map[string]outcome{
		"/contact": {text: "Call (415) 555-0199"},
		"/about":   {text: "About Acme"},
		"/team":    {text: "Our team"},
	}}
	pool := New(fetch.NewChain(f), time.Second, 4)

	results := pool.FetchTier(context.Background(), testQuery(), testTier())
	require.Len(t, results, 3)

	assert.Equal(t, "Call (415) 555-0199", results[0].Text)
	assert.Equal(t, model.ErrNone, results[0].FetchErr)
	assert.Equal(t, "About Acme", results[1].Text)
	assert.Equal(t, "Our team", results[2].Text)
}

func TestFetchTier_FailureIsolated(t *testing.T) {
	t.Parallel()

	f := &scriptedFetcher{outcomes: map[string]outcome{
		"/contact": {err: &fetch.StatusError{Code: 404}},
		"/about":   {text: "About Acme, call 415-555-0199"},
		"/team":    {text: "Our team"},
	}}
	pool := New(fetch.NewChain(f), time.Second, 4)

	results := pool.FetchTier(context.Background(), testQuery(), testTier())
	require.Len(t, results, 3)

	assert.Equal(t, model.ErrStatus, results[0].FetchErr)
	assert.False(t, results[0].OK())
	assert.True(t, results[1].OK())
	assert.True(t, results[2].OK())
}

func TestFetchTier_SlowSourceTimesOut(t *testing.T) {
	t.Parallel()

	f := &scriptedFetcher{outcomes: map[string]outcome{
		"/contact": {delay: 500 * time.Millisecond, text: "never delivered"},
		"/about":   {text: "fast"},
		"/team":    {text: "fast"},
	}}
	pool := New(fetch.NewChain(f), 50*time.Millisecond, 4)

	start := time.Now()
	results := pool.FetchTier(context.Background(), testQuery(), testTier())
	elapsed := time.Since(start)

	assert.Equal(t, model.ErrTimeout, results[0].FetchErr)
	assert.Empty(t, results[0].Text)
	assert.True(t, results[1].OK())
	assert.Less(t, elapsed, 400*time.Millisecond, "slow source must not stall the tier")
}

func TestFetchTier_PanicRecovered(t *testing.T) {
	t.Parallel()

	f := &scriptedFetcher{outcomes: map[string]outcome{
		"/contact": {panic: true},
		"/about":   {text: "still here"},
	}}
	pool := New(fetch.NewChain(f), time.Second, 4)

	tier := testTier()[:2]
	results := pool.FetchTier(context.Background(), testQuery(), tier)

	assert.Equal(t, model.ErrConnection, results[0].FetchErr)
	assert.Equal(t, "still here", results[1].Text)
}

func TestFetchTierFunc_StreamsAllResults(t *testing.T) {
	t.Parallel()

	f := &scriptedFetcher{outcomes: map[string]outcome{
		"/contact": {text: "a"},
		"/about":   {text: "b"},
		"/team":    {text: "c"},
	}}
	pool := New(fetch.NewChain(f), time.Second, 2)

	var mu sync.Mutex
	seen := map[string]string{}
	pool.FetchTierFunc(context.Background(), testQuery(), testTier(), func(res model.RawSourceResult) {
		mu.Lock()
		defer mu.Unlock()
		seen[res.Source.Name] = res.Text
	})

	assert.Len(t, seen, 3)
	assert.Equal(t, "a", seen["Company Website (/contact)"])
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	pool := New(fetch.NewChain(), 0, 0)
	assert.Equal(t, defaultFetchTimeout, pool.fetchTimeout)
	assert.Equal(t, 8, pool.maxConcurrent)
}
