package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/zerr"
)

// treeFileExts are the extensions picked up when a directory is given.
var treeFileExts = []string{".yaml", ".yml"}

// Resolver expands tree file arguments into concrete paths.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// Resolve expands each pattern in order. A glob is replaced by its matches,
// a directory by the YAML files below it, and anything else is kept as
// given so that a missing file is reported by whoever opens it.
// Duplicates keep their first position.
func (r *Resolver) Resolve(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, pattern := range patterns {
		paths, err := r.expand(pattern)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			add(path)
		}
	}

	return result, nil
}

func (r *Resolver) expand(pattern string) ([]string, error) {
	if !isGlob(pattern) {
		info, err := os.Stat(pattern)
		if err != nil || !info.IsDir() {
			return []string{pattern}, nil
		}
		return r.expandDir(pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}
	if len(matches) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoTreeFiles, "pattern matched nothing"), "pattern", pattern)
	}

	var paths []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", match)
		}
		if !info.IsDir() {
			paths = append(paths, match)
			continue
		}
		files, err := r.expandDir(match)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}
	return paths, nil
}

func (r *Resolver) expandDir(dir string) ([]string, error) {
	var paths []string
	for path := range r.walker.WalkFiles(dir, nil) {
		if isTreeFile(path) {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoTreeFiles, "directory has no tree files"), "path", dir)
	}
	return paths, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

func isTreeFile(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range treeFileExts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
