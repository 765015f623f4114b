package port

import "context"

// FileSystem inspects and removes the directories orbit owns.
type FileSystem interface {
	// Exists reports whether path exists. A missing path is not an error.
	Exists(ctx context.Context, path string) (bool, error)
	// GetSize returns the total size in bytes of a file or directory tree.
	GetSize(ctx context.Context, path string) (int64, error)
	RemoveAll(ctx context.Context, path string) error
}
