package rustdocs

import "context"

// DocResolver produces documentation text for a lookup request.
type DocResolver interface {
	Resolve(ctx context.Context, req LookupRequest) (*Resolution, error)
}

// Indexer dispatches an asynchronous crawl of a crate's local build output
// into the store. On success it returns a confirmation text.
type Indexer interface {
	Index(ctx context.Context, crateName string) (string, error)
}
