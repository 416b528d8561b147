package aggregate

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grove/internal/adapters/tree" //nolint:depguard // Wired in adapter layer
)

// NodeID is the unique identifier for the aggregate extensions Graft node.
const NodeID graft.ID = "adapter.aggregate"

func init() {
	graft.Register(graft.Node[*Set]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tree.NodeID},
		Run: func(ctx context.Context) (*Set, error) {
			tracker, err := graft.Dep[*tree.Tracker](ctx)
			if err != nil {
				return nil, err
			}
			return Install(tracker.Registry(), tracker), nil
		},
	})
}
