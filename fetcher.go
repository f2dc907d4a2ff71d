package rustdocs

import (
	"context"
	"fmt"
)

// FetchResponse is a fully-read HTTP response.
type FetchResponse struct {
	StatusCode int
	Body       []byte
}

// Fetcher retrieves documentation pages over HTTP. Implementations follow
// redirects and read the entire response body into memory; they do not
// classify response statuses, which is the resolver's concern.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResponse, error)

	// Close releases client resources.
	Close() error
}

// StatusError reports a client-error response from the documentation host.
// No retry is attempted.
type StatusError struct {
	StatusCode int
	Snippet    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("status error %d, response: %q", e.StatusCode, e.Snippet)
}
