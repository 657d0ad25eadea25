package secondary

import "context"

// DocumentStore defines the filesystem operations the combiner needs.
// Paths are resolved by the caller; implementations do no traversal of
// their own.
type DocumentStore interface {
	// ListNames returns the names of all entries directly inside dir
	// (non-recursive, files and directories alike).
	ListNames(ctx context.Context, dir string) ([]string, error)

	// ReadDocument reads the file at path as UTF-8 text.
	ReadDocument(ctx context.Context, path string) (string, error)

	// WriteDocument writes content to path as UTF-8 text, truncating any
	// existing file. The write is not atomic.
	WriteDocument(ctx context.Context, path string, content string) error

	// FileExists checks whether an entry exists at path.
	FileExists(ctx context.Context, path string) (bool, error)

	// FileSize returns the size in bytes of the file at path.
	FileSize(ctx context.Context, path string) (int64, error)
}
