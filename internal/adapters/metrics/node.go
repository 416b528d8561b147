package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/grove/internal/adapters/tree" //nolint:depguard // Wired in adapter layer
)

// NodeID is the unique identifier for the metrics registry Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[*prometheus.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tree.NodeID},
		Run: func(ctx context.Context) (*prometheus.Registry, error) {
			tracker, err := graft.Dep[*tree.Tracker](ctx)
			if err != nil {
				return nil, err
			}
			reg := prometheus.NewRegistry()
			if err := reg.Register(NewCollector(tracker.Registry())); err != nil {
				return nil, err
			}
			return reg, nil
		},
	})
}
