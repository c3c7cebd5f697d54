// Package storage provides publishers that move finished feed files to
// their published location.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FilePublisher publishes a feed by renaming the staged file onto the
// target path. Rename is atomic on POSIX filesystems, so readers of the
// target path never observe a partial feed.
type FilePublisher struct {
	targetPath string
}

// NewFilePublisher creates a new FilePublisher for the given target path
func NewFilePublisher(targetPath string) (*FilePublisher, error) {
	if targetPath == "" {
		return nil, errors.New("target path is required")
	}
	return &FilePublisher{targetPath: targetPath}, nil
}

// Publish moves the staged file onto the target path
func (p *FilePublisher) Publish(ctx context.Context, sourcePath string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(p.targetPath), 0755); err != nil {
		return "", fmt.Errorf("create target directory: %w", err)
	}
	if err := os.Rename(sourcePath, p.targetPath); err != nil {
		return "", fmt.Errorf("publish feed file: %w", err)
	}
	return p.targetPath, nil
}
