// Package slog provides logging decorators for rustdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gitduk/rustdocs"
)

// Ensure LoggingStore implements rustdocs.Store.
var _ rustdocs.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with debug logging of operations, keys, and
// durations.
type LoggingStore struct {
	next   rustdocs.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next rustdocs.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) Load(ctx context.Context, crateName, itemPath string) (string, error) {
	begin := time.Now()
	text, err := s.next.Load(ctx, crateName, itemPath)
	s.logger.Debug("store load",
		"crate", crateName,
		"item_path", itemPath,
		"hit", err == nil,
		"duration", time.Since(begin),
	)
	return text, err
}

// Search delegates to the wrapped store and logs the match count.
func (s *LoggingStore) Search(ctx context.Context, query string) ([]rustdocs.SearchMatch, error) {
	begin := time.Now()
	matches, err := s.next.Search(ctx, query)
	s.logger.Debug("store search",
		"query", query,
		"matches", len(matches),
		"duration", time.Since(begin),
	)
	return matches, err
}

// Index delegates to the wrapped store and logs the crawl duration.
func (s *LoggingStore) Index(ctx context.Context, crateName string, provider rustdocs.CrawlProvider) error {
	begin := time.Now()
	err := s.next.Index(ctx, crateName, provider)
	if err != nil {
		s.logger.Error("store index failed",
			"crate", crateName,
			"error", err,
			"duration", time.Since(begin),
		)
		return err
	}
	s.logger.Debug("store index",
		"crate", crateName,
		"duration", time.Since(begin),
	)
	return nil
}
