package mock

import (
	"context"

	"github.com/gitduk/rustdocs"
)

var _ rustdocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of rustdocs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*rustdocs.FetchResponse, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*rustdocs.FetchResponse, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
