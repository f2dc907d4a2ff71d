// Package fs provides the OS-backed implementation of rustdocs.FileSystem.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/gitduk/rustdocs"
)

// Ensure FileSystem implements rustdocs.FileSystem at compile time.
var _ rustdocs.FileSystem = (*FileSystem)(nil)

// FileSystem reads files from the local disk.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Load returns the file's contents. Missing files map to ENOTFOUND so the
// resolver can treat them as a non-fatal miss.
func (f *FileSystem) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, rustdocs.Errorf(rustdocs.ENOTFOUND, "file %q not found", path)
		}
		return nil, err
	}
	return contents, nil
}
