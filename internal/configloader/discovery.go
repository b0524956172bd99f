// Package configloader discovers and loads the plugin's own settings file.
package configloader

import (
	"os"
	"path/filepath"
)

// settingsFilenames are the settings files searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var settingsFilenames = []string{
	".sveltels.yml",
	".sveltels.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// FindSettings searches upward from startDir for a settings file.
// Returns the path to the first file found, or "" if none. Stops at VCS
// roots, the home directory, or the filesystem root. A missing settings
// file is not an error; defaults apply.
func FindSettings(startDir string) string {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		startDir = wd
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		homeDir = ""
	}

	currentDir := absDir
	for {
		for _, name := range settingsFilenames {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path
			}
		}

		if isVCSRoot(currentDir) {
			return ""
		}

		if homeDir != "" && currentDir == homeDir {
			return ""
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
