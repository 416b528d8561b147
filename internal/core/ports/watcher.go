package ports

import (
	"context"
	"iter"
)

// Watcher reports changes to a set of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching paths until ctx is cancelled or Stop is called.
	Start(ctx context.Context, paths ...string) error
	// Stop releases the watcher.
	Stop() error
	// Changes yields the coalesced set of changed paths, one batch at a time.
	Changes() iter.Seq[[]string]
}
