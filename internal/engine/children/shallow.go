package children

import "go.trai.ch/grove/internal/core/domain"

// Children returns the direct children of node and reports the read to the
// node's shallow signal. The returned set is live and must not be modified.
func (r *Registry) Children(node domain.NodeID) *domain.NodeSet {
	rec := r.record(node)
	if rec.shallowSignal == nil {
		rec.shallowSignal = r.reactive.NewSignal(signalName("shallow", node))
	}
	rec.shallowSignal.ReportObserved()
	return &rec.shallow
}

// AddChild records child as a direct child of node.
// Adding an existing child is a no-op.
func (r *Registry) AddChild(node, child domain.NodeID) error {
	return r.reactive.Batch(func() error {
		rec := r.record(node)
		if !rec.shallow.Add(child) {
			return nil
		}
		return r.shallowChanged(node, rec)
	})
}

// RemoveChild removes child from the direct children of node.
// Removing an absent child is a no-op.
func (r *Registry) RemoveChild(node, child domain.NodeID) error {
	return r.reactive.Batch(func() error {
		rec := r.record(node)
		if !rec.shallow.Remove(child) {
			return nil
		}
		return r.shallowChanged(node, rec)
	})
}

func (r *Registry) shallowChanged(node domain.NodeID, rec *record) error {
	r.stats.mutations.Add(1)
	if rec.shallowSignal != nil {
		rec.shallowSignal.ReportChanged()
	}
	return r.invalidate(node)
}
