package resolve

import (
	"context"
	"fmt"

	"github.com/gitduk/rustdocs"
)

var _ rustdocs.Indexer = (*Dispatcher)(nil)

// Dispatcher starts an asynchronous crawl of a crate's local build output
// into the store. The store owns crawl synchronization, including collapsing
// duplicate concurrent crawls; the dispatcher adds no locking of its own.
type Dispatcher struct {
	Store      rustdocs.Store
	FileSystem rustdocs.FileSystem

	// WorkspaceRoot is the Cargo workspace root, if one was discovered.
	WorkspaceRoot string

	// NewProvider constructs the crawl provider for a workspace root.
	NewProvider func(fs rustdocs.FileSystem, workspaceRoot string) rustdocs.CrawlProvider
}

// Index crawls the crate into the store and returns a confirmation text.
// Without a workspace root the store is never touched.
func (d *Dispatcher) Index(ctx context.Context, crateName string) (string, error) {
	if d.WorkspaceRoot == "" {
		return "", rustdocs.Errorf(rustdocs.ENOTFOUND, "no Cargo workspace root found")
	}

	provider := d.NewProvider(d.FileSystem, d.WorkspaceRoot)

	if err := d.Store.Index(ctx, crateName, provider); err != nil {
		return "", err
	}

	return fmt.Sprintf("Indexed %s", crateName), nil
}
