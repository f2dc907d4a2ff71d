package mock

import (
	"context"

	"github.com/gitduk/rustdocs"
)

var _ rustdocs.FileSystem = (*FileSystem)(nil)

// FileSystem is a mock implementation of rustdocs.FileSystem.
type FileSystem struct {
	LoadFn func(ctx context.Context, path string) ([]byte, error)
}

func (f *FileSystem) Load(ctx context.Context, path string) ([]byte, error) {
	return f.LoadFn(ctx, path)
}
