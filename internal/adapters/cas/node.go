package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grove/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot store Graft node.
const NodeID graft.ID = "adapter.snapshot_store"

// DefaultPath is where snapshots are kept unless overridden.
const DefaultPath = ".grove/state.json"

// Opener opens the store at a path chosen at run time.
type Opener func(path string) (ports.SnapshotStore, error)

func init() {
	graft.Register(graft.Node[Opener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Opener, error) {
			return func(path string) (ports.SnapshotStore, error) {
				if path == "" {
					path = DefaultPath
				}
				return NewStore(path)
			}, nil
		},
	})
}
