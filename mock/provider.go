package mock

import (
	"context"

	"github.com/gitduk/rustdocs"
)

var _ rustdocs.CrawlProvider = (*CrawlProvider)(nil)

// CrawlProvider is a mock implementation of rustdocs.CrawlProvider.
type CrawlProvider struct {
	PagesFn func(ctx context.Context, crateName string, fn func(rustdocs.CrawlPage) error) error
}

func (p *CrawlProvider) Pages(ctx context.Context, crateName string, fn func(rustdocs.CrawlPage) error) error {
	return p.PagesFn(ctx, crateName, fn)
}
