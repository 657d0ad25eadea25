// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
)

// DocumentAdapter implements secondary.DocumentStore against the local
// filesystem.
type DocumentAdapter struct{}

// NewDocumentAdapter creates a new filesystem document adapter.
func NewDocumentAdapter() *DocumentAdapter {
	return &DocumentAdapter{}
}

// ListNames returns the names of all entries directly inside dir.
func (a *DocumentAdapter) ListNames(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// ReadDocument reads the file at path as UTF-8 text.
func (a *DocumentAdapter) ReadDocument(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// WriteDocument writes content to path, truncating any existing file.
func (a *DocumentAdapter) WriteDocument(ctx context.Context, path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// FileExists checks whether an entry exists at path.
func (a *DocumentAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check file: %w", err)
	}
	return true, nil
}

// FileSize returns the size in bytes of the file at path.
func (a *DocumentAdapter) FileSize(ctx context.Context, path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}
	return info.Size(), nil
}
