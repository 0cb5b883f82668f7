// Package extract implements the test discovery and extraction pipeline:
// file enumeration, line filtering, heuristic method extraction, context
// window slicing, and assembly into a per-repository result.
package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// AllowedPatterns lists the extension patterns Enumerate accepts.
// Anything else is rejected as a validation error rather than passed on.
var AllowedPatterns = []string{
	"*.java",
	"*.py",
	"*.js",
	"*.jsx",
	"*.ts",
	"*.tsx",
}

// DefaultSkipDirs contains directory names that are skipped by default
// during file discovery.
var DefaultSkipDirs = []string{
	"node_modules",
	".git",
	"vendor",
	"dist",
	".next",
	"__pycache__",
	"coverage",
	".cache",
}

var (
	// ErrInvalidRoot is returned when the scan root does not exist or is not a directory.
	ErrInvalidRoot = errors.New("extract: invalid root directory")
	// ErrPatternNotAllowed is returned for patterns outside the allow-list.
	ErrPatternNotAllowed = errors.New("extract: pattern not allowed")
)

// Enumerate walks root and returns absolute paths of regular files whose base
// name matches pattern. pattern must be one of AllowedPatterns. Subtrees that
// cannot be read are skipped, not fatal. Ordering follows the filesystem walk
// and is deterministic for a deterministic directory listing.
func Enumerate(root, pattern string) ([]string, error) {
	return enumerate(root, pattern, buildSkipSet(DefaultSkipDirs))
}

func enumerate(root, pattern string, skipSet map[string]bool) ([]string, error) {
	if !patternAllowed(pattern) {
		return nil, fmt.Errorf("%w: %q (allowed: %s)", ErrPatternNotAllowed, pattern, strings.Join(AllowedPatterns, ", "))
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	var files []string
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, the walk continues.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if shouldSkipDir(path, absRoot, skipSet) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		matched, matchErr := doublestar.Match(pattern, filepath.Base(path))
		if matchErr != nil || !matched {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return files, fmt.Errorf("extract: walk %s: %w", root, walkErr)
	}

	return files, nil
}

func patternAllowed(pattern string) bool {
	for _, p := range AllowedPatterns {
		if p == pattern {
			return true
		}
	}
	return false
}

func buildSkipSet(patterns []string) map[string]bool {
	skipSet := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		skipSet[p] = true
	}
	return skipSet
}

func shouldSkipDir(path, rootPath string, skipSet map[string]bool) bool {
	if path == rootPath {
		return false
	}

	base := filepath.Base(path)
	return skipSet[base]
}
