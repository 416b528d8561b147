package children

import (
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports"
)

// DeepDirty reports the dirty flag of node without creating its record.
// This is exported for testing purposes only.
func (r *Registry) DeepDirty(node domain.NodeID) bool {
	if int(node) >= len(r.records) || r.records[node] == nil {
		return true
	}
	return r.records[node].deepDirty
}

// Signals returns the shallow and deep signals of node, nil when not created yet.
// This is exported for testing purposes only.
func (r *Registry) Signals(node domain.NodeID) (shallow, deep ports.Signal) {
	if int(node) >= len(r.records) || r.records[node] == nil {
		return nil, nil
	}
	rec := r.records[node]
	return rec.shallowSignal, rec.deepSignal
}
