package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalArchive persists declaration documents to the local filesystem.
type LocalArchive struct {
	baseDir string
}

// NewLocalArchive creates a LocalArchive instance. The directory is created if
// it does not exist.
func NewLocalArchive(baseDir string) (*LocalArchive, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		baseDir = "data/declarations"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &LocalArchive{baseDir: baseDir}, nil
}

// BaseDir returns the root directory used for archived documents.
func (a *LocalArchive) BaseDir() string {
	return a.baseDir
}

// Save writes the document to disk and returns the path relative to BaseDir.
func (a *LocalArchive) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty document")
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	relativePath := buildObjectKey(opts.BaseName, opts.Extension, time.Now().UTC())

	absPath := filepath.Join(a.baseDir, filepath.FromSlash(relativePath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return relativePath, nil
}

var _ Archive = (*LocalArchive)(nil)
