package ports

// TreeFiles locates tree files and detects changes to their contents.
//
//go:generate go run go.uber.org/mock/mockgen -source=tree_files.go -destination=mocks/mock_tree_files.go -package=mocks
type TreeFiles interface {
	// Resolve expands file, directory and glob arguments into tree file paths,
	// keeping argument order and dropping duplicates.
	Resolve(patterns []string) ([]string, error)

	// Fingerprint returns a digest of the given files' paths and contents.
	Fingerprint(paths []string) (string, error)
}
