// Package mock provides function-field mock implementations of the rustdocs
// interfaces for testing.
package mock

import (
	"context"

	"github.com/gitduk/rustdocs"
)

var _ rustdocs.Store = (*Store)(nil)

// Store is a mock implementation of rustdocs.Store.
type Store struct {
	LoadFn   func(ctx context.Context, crateName, itemPath string) (string, error)
	SearchFn func(ctx context.Context, query string) ([]rustdocs.SearchMatch, error)
	IndexFn  func(ctx context.Context, crateName string, provider rustdocs.CrawlProvider) error
}

func (s *Store) Load(ctx context.Context, crateName, itemPath string) (string, error) {
	return s.LoadFn(ctx, crateName, itemPath)
}

func (s *Store) Search(ctx context.Context, query string) ([]rustdocs.SearchMatch, error) {
	return s.SearchFn(ctx, query)
}

func (s *Store) Index(ctx context.Context, crateName string, provider rustdocs.CrawlProvider) error {
	return s.IndexFn(ctx, crateName, provider)
}
