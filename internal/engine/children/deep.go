package children

import (
	"slices"
	"strings"

	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/zerr"
)

// Deep is the result of a descendant computation: the descendant set plus the
// aggregate each extension built over it. A Deep is never modified after it
// is returned; recomputation replaces it.
type Deep struct {
	nodes *domain.NodeSet
	data  []any
}

// Nodes returns every descendant, children before their own descendants.
func (d *Deep) Nodes() *domain.NodeSet {
	return d.nodes
}

// Len returns the number of descendants.
func (d *Deep) Len() int {
	return d.nodes.Len()
}

func (r *Registry) newDeep(capacity int) *Deep {
	return &Deep{
		nodes: domain.NewNodeSet(capacity),
		data:  r.extensions.initData(),
	}
}

// add inserts node into d and feeds it to every extension. A node reachable
// along two paths is only fed once.
func (r *Registry) add(d *Deep, node domain.NodeID) {
	if d.nodes.Add(node) {
		r.extensions.addNode(d.data, node)
	}
}

// DeepChildren returns the descendants of node, recomputing the cache first
// if it is dirty. Two calls without a mutation in between return the same
// *Deep. It fails with domain.ErrCycleDetected when the children relation
// loops; every record on the loop is left dirty.
func (r *Registry) DeepChildren(node domain.NodeID) (*Deep, error) {
	r.stats.reads.Add(1)

	rec := r.record(node)
	if rec.deepDirty {
		err := r.reactive.Batch(func() error {
			_, err := r.recompute(node, nil)
			return err
		})
		if err != nil {
			return nil, err
		}
	} else {
		r.stats.hits.Add(1)
	}

	if rec.deepSignal == nil {
		rec.deepSignal = r.reactive.NewSignal(signalName("deep", node))
	}
	rec.deepSignal.ReportObserved()

	return rec.deep, nil
}

// recompute rebuilds the deep cache of node from the caches of its children,
// recomputing those first when they are dirty. path holds the nodes currently
// being expanded, outermost first.
func (r *Registry) recompute(node domain.NodeID, path []domain.NodeID) (*Deep, error) {
	rec := r.record(node)
	if rec.computing {
		return nil, cycleError(path, node)
	}
	if !rec.deepDirty {
		return rec.deep, nil
	}

	rec.computing = true
	defer func() { rec.computing = false }()
	path = append(path, node)

	deep := r.newDeep(rec.shallow.Len())
	for child := range rec.shallow.All() {
		r.add(deep, child)

		childDeep, err := r.recompute(child, path)
		if err != nil {
			return nil, err
		}
		for descendant := range childDeep.nodes.All() {
			r.add(deep, descendant)
		}
	}

	rec.deep = deep
	rec.deepDirty = false
	r.stats.recomputations.Add(1)
	if rec.deepSignal != nil {
		rec.deepSignal.ReportChanged()
	}

	return deep, nil
}

// cycleError builds an error whose metadata spells out the loop.
func cycleError(path []domain.NodeID, node domain.NodeID) error {
	start := max(slices.Index(path, node), 0)

	var b strings.Builder
	for _, n := range path[start:] {
		b.WriteString(n.String())
		b.WriteString(" -> ")
	}
	b.WriteString(node.String())

	return zerr.With(zerr.Wrap(domain.ErrCycleDetected, "failed to compute deep children"), "cycle", b.String())
}
