package rustdocs

import "context"

// FileSystem reads files for the local build lookup and the crawl provider.
// It is also used to locate the Cargo workspace root by probing for a
// build manifest.
type FileSystem interface {
	// Load returns the file's contents. Returns ENOTFOUND if the file
	// does not exist.
	Load(ctx context.Context, path string) ([]byte, error)
}
