// Package componentindex builds and caches the index of component files
// (recognized by extension) under a project's base directories.
package componentindex

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultExtensions are the recognized component file extensions, matched
// case-insensitively.
//
//nolint:gochecknoglobals // Read-only lookup table.
var DefaultExtensions = []string{".svelte"}

// Build recursively walks each base directory and returns the absolute
// paths of every component file found, in walk order per directory.
//
// A directory that cannot be read fails the whole build: a partial index
// would silently produce missing-definition results, so the failure is
// surfaced instead of aggregated around.
func Build(ctx context.Context, baseDirs []string) ([]string, error) {
	return BuildWithExtensions(ctx, baseDirs, DefaultExtensions)
}

// BuildWithExtensions is Build with a caller-supplied extension list.
func BuildWithExtensions(ctx context.Context, baseDirs, extensions []string) ([]string, error) {
	var files []string

	for _, dir := range baseDirs {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("index build cancelled: %w", ctx.Err())
		default:
		}

		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("resolve base directory %s: %w", dir, err)
		}

		walkErr := filepath.WalkDir(absDir, func(path string, entry fs.DirEntry, err error) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if err != nil {
				// Fail-fast, including permission errors.
				return err
			}

			if entry.IsDir() {
				return nil
			}

			if hasMatchingExtension(path, extensions) {
				files = append(files, path)
			}

			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walk base directory %s: %w", absDir, walkErr)
		}
	}

	return files, nil
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// Cache holds built indexes per project root. Built lazily on first use and
// never refreshed on add/delete/rename; invalidation is the caller's call.
// Concurrent first-use builds of the same root are not deduplicated: the
// walk is idempotent and the last write wins on the same value.
type Cache struct {
	mu     sync.Mutex
	byRoot map[string][]string
}

// NewCache creates an empty index cache.
func NewCache() *Cache {
	return &Cache{byRoot: make(map[string][]string)}
}

// EnsureBuilt returns the index for projectRoot, building it from baseDirs
// on first use.
func (c *Cache) EnsureBuilt(ctx context.Context, projectRoot string, baseDirs []string) ([]string, error) {
	c.mu.Lock()
	files, ok := c.byRoot[projectRoot]
	c.mu.Unlock()
	if ok {
		return files, nil
	}

	files, err := Build(ctx, baseDirs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byRoot[projectRoot] = files
	c.mu.Unlock()

	return files, nil
}

// Invalidate drops the cached index for one project root.
func (c *Cache) Invalidate(projectRoot string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byRoot, projectRoot)
}
