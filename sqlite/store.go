package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gitduk/rustdocs"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// searchLimit bounds the number of autocompletion matches returned.
const searchLimit = 100

// Compile-time interface verification.
var _ rustdocs.Store = (*Store)(nil)

// Store implements rustdocs.Store using SQLite. A single Store is shared by
// all command invocations; crawls of the same crate are collapsed so that
// concurrent index requests trigger only one walk of the build output.
type Store struct {
	db        *DB
	converter rustdocs.Converter
	crawls    singleflight.Group
}

// NewStore creates a new Store. The converter turns crawled rustdoc pages
// into the markdown that gets persisted.
func NewStore(db *DB, converter rustdocs.Converter) *Store {
	return &Store{db: db, converter: converter}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// Load returns previously indexed documentation for an item.
func (s *Store) Load(ctx context.Context, crateName, itemPath string) (string, error) {
	var content string

	err := s.db.QueryRowContext(ctx, `
		SELECT content FROM documents
		WHERE crate_name = ? AND item_path = ?
	`, crateName, itemPath).Scan(&content)

	if err == sql.ErrNoRows {
		return "", rustdocs.Errorf(rustdocs.ENOTFOUND, "no docs indexed for %q", crateName)
	}
	if err != nil {
		return "", err
	}

	return content, nil
}

// Search returns autocompletion matches for a partial query, ordered by
// crate then item path. An empty query matches nothing.
func (s *Store) Search(ctx context.Context, query string) ([]rustdocs.SearchMatch, error) {
	if query == "" {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT crate_name, item_path FROM items
		WHERE crate_name || '::' || item_path LIKE '%' || ? || '%' ESCAPE '\'
		ORDER BY crate_name, item_path
		LIMIT ?
	`, escapeLike(query), searchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []rustdocs.SearchMatch
	for rows.Next() {
		var m rustdocs.SearchMatch
		if err := rows.Scan(&m.CrateName, &m.ItemPath); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// escapeLike escapes LIKE wildcards in a user query.
func escapeLike(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// Index crawls the provider's pages for a crate into the store. Concurrent
// calls for the same crate share one crawl; its outcome is returned to all
// callers.
func (s *Store) Index(ctx context.Context, crateName string, provider rustdocs.CrawlProvider) error {
	_, err, _ := s.crawls.Do(crateName, func() (any, error) {
		return nil, s.crawl(ctx, crateName, provider)
	})
	return err
}

// crawl walks the provider's pages, converts them, and upserts the results.
// Pages whose converted content is unchanged are left alone.
func (s *Store) crawl(ctx context.Context, crateName string, provider rustdocs.CrawlProvider) error {
	return provider.Pages(ctx, crateName, func(page rustdocs.CrawlPage) error {
		result, err := s.converter.Convert(page.HTML)
		if err != nil {
			// A malformed page should not abort the whole crawl.
			return nil
		}

		if err := s.upsertDocument(ctx, crateName, page.ItemPath, result.Markdown); err != nil {
			return err
		}

		return s.recordItems(ctx, crateName, page.ItemPath, result.Items)
	})
}

// upsertDocument inserts or replaces a document row, skipping the write
// when the content hash is unchanged.
func (s *Store) upsertDocument(ctx context.Context, crateName, itemPath, content string) error {
	hash := hashContent(content)

	var existing string
	err := s.db.QueryRowContext(ctx, `
		SELECT content_hash FROM documents
		WHERE crate_name = ? AND item_path = ?
	`, crateName, itemPath).Scan(&existing)
	if err == nil && existing == hash {
		return nil
	}
	if err != nil && err != sql.ErrNoRows {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, crate_name, item_path, content, content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (crate_name, item_path) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			indexed_at = excluded.indexed_at
	`, uuid.New().String(), crateName, itemPath, content, hash,
		time.Now().UTC().Format(time.RFC3339))

	return err
}

// recordItems registers a page's own path and its listed child items as
// search candidates.
func (s *Store) recordItems(ctx context.Context, crateName, itemPath string, children []string) error {
	paths := make([]string, 0, len(children)+1)
	if itemPath != "" {
		paths = append(paths, itemPath)
	}
	for _, child := range children {
		if itemPath == "" {
			paths = append(paths, child)
		} else {
			paths = append(paths, itemPath+rustdocs.PathSeparator+child)
		}
	}

	for _, p := range paths {
		if _, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO items (crate_name, item_path) VALUES (?, ?)
		`, crateName, p); err != nil {
			return err
		}
	}
	return nil
}
