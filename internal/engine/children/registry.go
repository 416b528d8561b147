// Package children maintains, for every node of a mutable tree, its direct
// children and a memoized set of all its descendants.
//
// Mutations dirty the descendant cache of the mutated node and every
// ancestor. Reads rebuild dirty caches lazily, reusing every child cache that
// is still clean, and feed each visited descendant to the registered
// extensions so they can aggregate per-node data in the same pass.
//
// A Registry is single-threaded: callers must not use it from more than one
// goroutine at a time.
package children

import (
	"fmt"
	"sync/atomic"

	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports"
)

// record is the per-node state. Signals stay nil until someone observes them.
type record struct {
	shallow       domain.NodeSet
	shallowSignal ports.Signal

	deep       *Deep
	deepDirty  bool
	deepSignal ports.Signal

	// computing is set while the record is on the recomputation stack.
	computing bool
}

// Registry is the arena of per-node records, indexed by NodeID.
type Registry struct {
	parents    ports.ParentResolver
	reactive   ports.Reactive
	extensions Extensions

	records []*record
	stats   counters
}

// New creates an empty Registry.
// parents must reflect the current single-parent relation of the host tree.
func New(parents ports.ParentResolver, reactive ports.Reactive) *Registry {
	return &Registry{
		parents:  parents,
		reactive: reactive,
	}
}

// record returns the record of node, creating it on first access.
func (r *Registry) record(node domain.NodeID) *record {
	if int(node) >= len(r.records) {
		grown := make([]*record, int(node)+1, max(int(node)+1, 2*len(r.records)))
		copy(grown, r.records)
		r.records = grown
	}
	rec := r.records[node]
	if rec == nil {
		rec = &record{
			deep:      r.newDeep(0),
			deepDirty: true,
		}
		r.records[node] = rec
		r.stats.records.Add(1)
	}
	return rec
}

// Release drops the record of node so the id can be handed out again.
// The host must have detached node from its parent beforehand.
func (r *Registry) Release(node domain.NodeID) {
	if int(node) >= len(r.records) || r.records[node] == nil {
		return
	}
	r.records[node] = nil
	r.stats.records.Add(-1)
}

// Extensions returns the extension registry owned by r.
func (r *Registry) Extensions() *Extensions {
	return &r.extensions
}

func signalName(kind string, node domain.NodeID) string {
	return fmt.Sprintf("%s:%d", kind, node)
}

type counters struct {
	records        atomic.Int64
	reads          atomic.Uint64
	hits           atomic.Uint64
	recomputations atomic.Uint64
	invalidations  atomic.Uint64
	mutations      atomic.Uint64
}

// Stats is a point-in-time copy of the registry counters.
type Stats struct {
	// Records is the number of live records.
	Records int64
	// Reads counts DeepChildren calls.
	Reads uint64
	// Hits counts DeepChildren calls served without recomputation.
	Hits uint64
	// Recomputations counts rebuilt deep caches, including transitive ones.
	Recomputations uint64
	// Invalidations counts records dirtied by upward walks.
	Invalidations uint64
	// Mutations counts AddChild and RemoveChild calls that changed a shallow set.
	Mutations uint64
}

// Stats returns the current counters. It is safe to call from any goroutine.
func (r *Registry) Stats() Stats {
	return Stats{
		Records:        r.stats.records.Load(),
		Reads:          r.stats.reads.Load(),
		Hits:           r.stats.hits.Load(),
		Recomputations: r.stats.recomputations.Load(),
		Invalidations:  r.stats.invalidations.Load(),
		Mutations:      r.stats.mutations.Load(),
	}
}
