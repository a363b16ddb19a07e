package rocketreach

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/time/rate"
)

func TestLookupPerson_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Api-Key"))
		assert.Equal(t, "Jane Doe", r.URL.Query().Get("name"))
		assert.Equal(t, "Acme Corp", r.URL.Query().Get("current_employer"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Jane Doe",
			"title": "VP Sales",
			"current_employer": "Acme Corp",
			"email": "jane@acme.example",
			"phone_numbers": ["(202) 555-0123"],
			"linkedin_url": "https://linkedin.com/in/janedoe"
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	p, err := c.LookupPerson(context.Background(), "Jane Doe", "Acme Corp")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "VP Sales", p.Title)
	assert.Equal(t, []string{"(202) 555-0123"}, p.Phones)
	assert.Equal(t, "https://linkedin.com/in/janedoe", p.LinkedInURL)
}

func TestLookupPerson_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	p, err := c.LookupPerson(context.Background(), "Nobody", "Nowhere Inc")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLookupPerson_RateLimitedIsAMiss(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	p, err := c.LookupPerson(context.Background(), "Jane Doe", "Acme Corp")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLookupPerson_EmptyKeySkipsCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewClient("", WithBaseURL(srv.URL))
	p, err := c.LookupPerson(context.Background(), "Jane Doe", "Acme Corp")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Zero(t, calls.Load())
}

func TestLookupPerson_QuotaHeadersHonored(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("X-Rate-Limit-Remaining", "0")
		w.Header().Set("X-Rate-Limit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Hour).Unix()))
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("test-key",
		WithBaseURL(srv.URL),
		WithRateLimit(rate.Inf, 1),
	)

	p, err := c.LookupPerson(context.Background(), "Jane Doe", "Acme Corp")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, int32(1), calls.Load())

	// Quota exhausted until the reported reset; later calls never hit the API.
	p, err = c.LookupPerson(context.Background(), "Jane Doe", "Acme Corp")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLookupPerson_ServerErrorIsAnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.LookupPerson(context.Background(), "Jane Doe", "Acme Corp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestLookupPerson_EmptyBodyIsAMiss(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	p, err := c.LookupPerson(context.Background(), "Jane Doe", "Acme Corp")
	require.NoError(t, err)
	assert.Nil(t, p)
}
