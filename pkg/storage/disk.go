package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PhotoStorage persists uploaded photo content and returns a reference
// path the UI can resolve to a URL.
type PhotoStorage interface {
	Save(content []byte, originalName string) (string, error)
}

// DiskStorage writes photos into a fixed uploads root on the local
// filesystem. Files are never overwritten or deleted; each save produces
// a new timestamp-prefixed file.
type DiskStorage struct {
	root      string
	urlPrefix string
}

// NewDiskStorage creates a DiskStorage rooted at dir. Saved files are
// referenced as urlPrefix + "/" + filename.
func NewDiskStorage(dir, urlPrefix string) *DiskStorage {
	return &DiskStorage{root: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// Save writes content under the uploads root, creating the root if absent.
// The stored name is the upload's unix-millisecond timestamp plus the
// sanitized original name, so repeated uploads of the same file coexist.
func (s *DiskStorage) Save(content []byte, originalName string) (string, error) {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}

	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))
	filePath := filepath.Join(s.root, fileName)

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	return s.urlPrefix + "/" + fileName, nil
}

// sanitizeName strips any path components and characters that would be
// unsafe in a filename or a URL path segment.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "\x00", "")
	name = strings.ReplaceAll(name, "\"", "")
	name = strings.ReplaceAll(name, "'", "")
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == ".." {
		name = "photo"
	}
	return name
}
