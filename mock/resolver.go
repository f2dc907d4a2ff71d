package mock

import (
	"context"

	"github.com/gitduk/rustdocs"
)

var _ rustdocs.DocResolver = (*DocResolver)(nil)

// DocResolver is a mock implementation of rustdocs.DocResolver.
type DocResolver struct {
	ResolveFn func(ctx context.Context, req rustdocs.LookupRequest) (*rustdocs.Resolution, error)
}

func (r *DocResolver) Resolve(ctx context.Context, req rustdocs.LookupRequest) (*rustdocs.Resolution, error) {
	return r.ResolveFn(ctx, req)
}

var _ rustdocs.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of rustdocs.Indexer.
type Indexer struct {
	IndexFn func(ctx context.Context, crateName string) (string, error)
}

func (i *Indexer) Index(ctx context.Context, crateName string) (string, error) {
	return i.IndexFn(ctx, crateName)
}
