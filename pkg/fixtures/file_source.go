package fixtures

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSource reads fixture resources from a directory on disk. Used for
// local development and tests.
type FileSource struct {
	dir string
}

// NewFileSource creates a file fixture source rooted at dir
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Fetch reads one resource file
func (s *FileSource) Fetch(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}
	return data, nil
}
