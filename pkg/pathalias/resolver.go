// Package pathalias resolves a project's path-alias configuration
// (tsconfig/jsconfig "compilerOptions.paths") into the set of absolute base
// directories a bare import specifier may resolve against.
package pathalias

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// configFilenames are the alias config files searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFilenames = []string{
	"tsconfig.json",
	"jsconfig.json",
}

// FindProjectConfig searches upward from startDir for an alias config file.
// Returns the path to the first config file found, or "" if none exists
// before the filesystem root.
func FindProjectConfig(startDir string) string {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	currentDir := absDir
	for {
		for _, name := range configFilenames {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root.
			return ""
		}
		currentDir = parentDir
	}
}

// ResolveBasePaths walks upward from startDir to the nearest alias config
// file and returns the absolute base directories its wildcard path mappings
// resolve to. A missing config file or a parse failure yields an empty set:
// alias-based resolution is simply disabled for that document, it is not an
// error.
func ResolveBasePaths(startDir string) []string {
	configPath := FindProjectConfig(startDir)
	if configPath == "" {
		return nil
	}
	return basePathsFromConfig(configPath)
}

// tsconfigOptions is the subset of the config file this package reads.
type tsconfigOptions struct {
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// basePathsFromConfig parses one alias config file into absolute base
// directories. Only wildcard-suffixed alias patterns ("@x/*") are
// supported; exact patterns are silently ignored.
func basePathsFromConfig(configPath string) []string {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil
	}

	var cfg tsconfigOptions
	if err := json.Unmarshal(StripComments(data), &cfg); err != nil {
		// Malformed config degrades to no aliases.
		return nil
	}

	baseURL := cfg.CompilerOptions.BaseURL
	if baseURL == "" {
		baseURL = "."
	}
	configDir := filepath.Dir(configPath)
	baseDir := filepath.Join(configDir, baseURL)

	seen := make(map[string]struct{})
	var basePaths []string
	for alias, targets := range cfg.CompilerOptions.Paths {
		if !strings.HasSuffix(alias, "*") {
			continue
		}
		for _, target := range targets {
			if !strings.HasSuffix(target, "*") {
				continue
			}
			dir := filepath.Join(baseDir, strings.TrimSuffix(target, "*"))
			if _, ok := seen[dir]; !ok {
				seen[dir] = struct{}{}
				basePaths = append(basePaths, dir)
			}
		}
	}

	// Matching is suffix-filtered, so order carries no priority; sort for
	// deterministic results.
	sort.Strings(basePaths)

	return basePaths
}

// Cache holds resolved alias base paths per project root. State is explicit
// so multi-project sessions and invalidation are first-class rather than
// implied by first-call mutation.
type Cache struct {
	mu     sync.Mutex
	byRoot map[string][]string
}

// NewCache creates an empty alias cache.
func NewCache() *Cache {
	return &Cache{byRoot: make(map[string][]string)}
}

// EnsureResolved returns the project root (the alias config file's
// directory) and base paths for the project containing startDir, resolving
// and caching them on first use. Root is "" and paths nil when no config
// file exists above startDir.
func (c *Cache) EnsureResolved(startDir string) (string, []string) {
	configPath := FindProjectConfig(startDir)
	if configPath == "" {
		return "", nil
	}
	root := filepath.Dir(configPath)

	c.mu.Lock()
	defer c.mu.Unlock()

	if paths, ok := c.byRoot[root]; ok {
		return root, paths
	}

	paths := basePathsFromConfig(configPath)
	c.byRoot[root] = paths
	return root, paths
}

// Invalidate drops the cached base paths for one project root.
func (c *Cache) Invalidate(projectRoot string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byRoot, projectRoot)
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
