// Package rocketreach provides a client for the RocketReach people lookup
// API, the one authoritative paid source in the resolution cascade.
package rocketreach

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.rocketreach.co/v2"

// Client performs authoritative person lookups. A nil result with a nil
// error is the ordinary "not found" outcome; errors are reserved for
// malformed responses and transport failures.
type Client interface {
	LookupPerson(ctx context.Context, name, company string) (*Person, error)
}

// Person is the contact record returned by a successful lookup.
type Person struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Employer    string   `json:"current_employer"`
	Email       string   `json:"email"`
	Phones      []string `json:"phone_numbers"`
	LinkedInURL string   `json:"linkedin_url"`
	TwitterURL  string   `json:"twitter_url"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit overrides the local request budget.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(r, burst)
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter

	// Server-reported quota window, shared across all calls in the process.
	mu             sync.Mutex
	remainingCalls int
	windowReset    time.Time
}

// NewClient creates a RocketReach client. An empty API key yields a client
// whose lookups always report "not found", so callers need no special case
// for missing credentials.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter:        rate.NewLimiter(rate.Every(2*time.Second), 5),
		remainingCalls: 10,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// withinQuota checks the server-reported window. Outside the window the
// quota is assumed refreshed.
func (c *httpClient) withinQuota() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if time.Now().Before(c.windowReset) {
		return c.remainingCalls > 0
	}
	return true
}

// updateQuota records the rate-limit headers from the latest response.
func (c *httpClient) updateQuota(resp *http.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v := resp.Header.Get("X-Rate-Limit-Remaining"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.remainingCalls = n
		}
	}
	if v := resp.Header.Get("X-Rate-Limit-Reset"); v != "" {
		if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.windowReset = time.Unix(ts, 0)
		}
	}
}

func (c *httpClient) LookupPerson(ctx context.Context, name, company string) (*Person, error) {
	if c.apiKey == "" || !c.withinQuota() {
		return nil, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "rocketreach: rate limiter wait")
	}

	params := url.Values{}
	params.Set("name", name)
	params.Set("current_employer", company)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/lookup?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "rocketreach: create request")
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "rocketreach: send request")
	}
	defer resp.Body.Close()

	c.updateQuota(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "rocketreach: read response")
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		// Not found and unavailability are both ordinary empty results.
		return nil, nil
	default:
		return nil, eris.Errorf("rocketreach: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if len(body) == 0 || string(body) == "null" || string(body) == "{}" {
		return nil, nil
	}

	var p Person
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, eris.Wrap(err, "rocketreach: unmarshal response")
	}
	if p.Name == "" && p.Email == "" && len(p.Phones) == 0 {
		return nil, nil
	}
	return &p, nil
}
