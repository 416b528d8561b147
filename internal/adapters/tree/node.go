package tree

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grove/internal/adapters/reactive" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/grove/internal/core/ports"
)

// NodeID is the unique identifier for the tree tracker Graft node.
const NodeID graft.ID = "adapter.tree"

func init() {
	graft.Register(graft.Node[*Tracker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{reactive.NodeID},
		Run: func(ctx context.Context) (*Tracker, error) {
			rt, err := graft.Dep[ports.Reactive](ctx)
			if err != nil {
				return nil, err
			}
			return New(rt), nil
		},
	})
}
