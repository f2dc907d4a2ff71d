// Package http provides the net/http-based implementation of
// rustdocs.Fetcher used for remote documentation retrieval.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gitduk/rustdocs"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements rustdocs.Fetcher at compile time.
var _ rustdocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documentation pages over HTTP. Redirects are followed.
// The response status is returned as-is; classifying it is the resolver's
// concern, so a 4xx does not produce an error here.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit caps outgoing requests at rps requests per second with a
// burst of 1. No limit is applied if not specified.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues a GET to the URL and reads the entire response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*rustdocs.FetchResponse, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &rustdocs.FetchResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
