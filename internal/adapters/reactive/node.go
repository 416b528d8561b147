package reactive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grove/internal/core/ports"
)

// NodeID is the unique identifier for the reactive runtime Graft node.
const NodeID graft.ID = "adapter.reactive"

func init() {
	graft.Register(graft.Node[ports.Reactive]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reactive, error) {
			return New(), nil
		},
	})
}
