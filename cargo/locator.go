// Package cargo anchors the module to a Cargo workspace: it locates the
// workspace root by its build manifest and supplies the crawl provider that
// reads `cargo doc` output for indexing.
package cargo

import (
	"context"
	"path/filepath"

	"github.com/gitduk/rustdocs"
)

// Manifest is the build manifest that marks a Cargo workspace root.
const Manifest = "Cargo.toml"

// Locator discovers the Cargo workspace root for a project directory.
type Locator struct {
	FileSystem rustdocs.FileSystem
}

// Locate walks from startDir toward the filesystem root and returns the
// first directory containing a Cargo.toml. Returns ENOTFOUND if no manifest
// is found.
func (l *Locator) Locate(ctx context.Context, startDir string) (string, error) {
	dir := filepath.Clean(startDir)

	for {
		if _, err := l.FileSystem.Load(ctx, filepath.Join(dir, Manifest)); err == nil {
			return dir, nil
		} else if code := rustdocs.ErrorCode(err); code != rustdocs.ENOTFOUND {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", rustdocs.Errorf(rustdocs.ENOTFOUND, "no Cargo workspace root found")
		}
		dir = parent
	}
}
