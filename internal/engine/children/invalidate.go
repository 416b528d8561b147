package children

import (
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/zerr"
)

// invalidate dirties the deep cache of node and of every ancestor, walking
// parent links up to the root. It does not stop at records that are already
// dirty.
func (r *Registry) invalidate(node domain.NodeID) error {
	current := node
	for steps := 0; ; steps++ {
		// A chain longer than the arena has to revisit a node.
		if steps > len(r.records) {
			return zerr.With(zerr.Wrap(domain.ErrParentCycle, "failed to invalidate ancestors"), "node", node.String())
		}

		rec := r.record(current)
		rec.deepDirty = true
		if rec.deepSignal != nil {
			rec.deepSignal.ReportChanged()
		}
		r.stats.invalidations.Add(1)

		parent, ok := r.parents.ParentOf(current)
		if !ok {
			return nil
		}
		current = parent
	}
}
