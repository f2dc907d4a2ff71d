package rustdocs

import "context"

// SearchMatch is a single autocompletion candidate returned by the store.
type SearchMatch struct {
	CrateName string
	ItemPath  string
}

// String formats the match as "crate::item", or just the crate name for a
// crate-root entry.
func (m SearchMatch) String() string {
	if m.ItemPath == "" {
		return m.CrateName
	}
	return m.CrateName + PathSeparator + m.ItemPath
}

// Store is the process-wide persistent documentation cache and search
// index. It is constructed once at process start and shared by reference
// across command invocations; it owns its own synchronization, including
// collapsing duplicate concurrent crawls of the same crate.
type Store interface {
	// Load returns previously indexed documentation for an item.
	// itemPath is the "::"-joined item path, empty for the crate root.
	// Returns ENOTFOUND on a miss.
	Load(ctx context.Context, crateName, itemPath string) (string, error)

	// Search returns autocompletion matches for a partial query, ordered
	// by relevance. Ranking is owned by the store.
	Search(ctx context.Context, query string) ([]SearchMatch, error)

	// Index crawls the provider's pages for a crate into the store.
	// Potentially long-running; errors propagate unchanged.
	Index(ctx context.Context, crateName string, provider CrawlProvider) error
}

// CrawlPage is a single documentation page supplied to the store's indexer.
type CrawlPage struct {
	// ItemPath is the "::"-joined item path the page documents, empty for
	// the crate root.
	ItemPath string

	// HTML is the raw page markup.
	HTML []byte
}

// CrawlProvider abstracts a source of documentation pages for indexing.
// This module supplies a "local build output under a workspace root"
// implementation in the cargo package.
type CrawlProvider interface {
	// Pages invokes fn for every page of the crate, in a deterministic
	// order. A non-nil error from fn stops the walk and is returned.
	Pages(ctx context.Context, crateName string, fn func(CrawlPage) error) error
}
