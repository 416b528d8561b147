package fs

import "go.trai.ch/grove/internal/core/ports"

var _ ports.TreeFiles = (*TreeFiles)(nil)

// TreeFiles combines a Resolver and a Hasher into ports.TreeFiles.
type TreeFiles struct {
	resolver *Resolver
	hasher   *Hasher
}

// NewTreeFiles creates a new TreeFiles.
func NewTreeFiles(resolver *Resolver, hasher *Hasher) *TreeFiles {
	return &TreeFiles{resolver: resolver, hasher: hasher}
}

// Resolve implements ports.TreeFiles.
func (t *TreeFiles) Resolve(patterns []string) ([]string, error) {
	return t.resolver.Resolve(patterns)
}

// Fingerprint implements ports.TreeFiles.
func (t *TreeFiles) Fingerprint(paths []string) (string, error) {
	return t.hasher.Fingerprint(paths)
}
