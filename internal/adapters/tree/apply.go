package tree

import (
	"slices"

	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/zerr"
)

// Changes summarizes the edits performed by Apply.
type Changes struct {
	Added    int
	Attached int
	Detached int
	Freed    int
}

// Empty reports whether Apply left the tree untouched.
func (c Changes) Empty() bool {
	return c == Changes{}
}

// Apply reshapes the tree to match spec in a single batch. Nodes no longer
// mentioned by spec are detached and freed; edges already in place are left
// untouched so their cached descendant sets survive. On error the tree may
// be partially updated.
func (t *Tracker) Apply(spec *domain.TreeSpec) (Changes, error) {
	desired := make(map[domain.InternedString]domain.InternedString)
	for _, e := range spec.Edges() {
		if prev, ok := desired[e.Child]; ok && prev != e.Parent {
			err := zerr.Wrap(domain.ErrNodeAlreadyAttached, "failed to apply tree")
			err = zerr.With(err, "node", e.Child.String())
			return Changes{}, zerr.With(err, "parent", prev.String())
		}
		desired[e.Child] = e.Parent
	}

	var changes Changes
	err := t.reactive.Batch(func() error {
		names := spec.Names()
		mentioned := make(map[domain.InternedString]struct{}, len(names))
		for _, name := range names {
			mentioned[name] = struct{}{}
			if _, ok := t.ids[name]; !ok {
				changes.Added++
			}
			t.Node(name)
		}

		for _, child := range t.attached() {
			want, ok := desired[t.names[child]]
			if ok && t.names[t.parents[child]] == want {
				continue
			}
			if err := t.Detach(child); err != nil {
				return err
			}
			changes.Detached++
		}

		for _, e := range spec.Edges() {
			child, parent := t.ids[e.Child], t.ids[e.Parent]
			if p, ok := t.parents[child]; ok && p == parent {
				continue
			}
			if err := t.Attach(parent, child); err != nil {
				return err
			}
			changes.Attached++
		}

		for _, id := range t.liveIDs() {
			if _, ok := mentioned[t.names[id]]; ok {
				continue
			}
			if err := t.Free(id); err != nil {
				return err
			}
			changes.Freed++
		}
		return nil
	})
	return changes, err
}

// attached returns the ids that currently have a parent, in id order.
func (t *Tracker) attached() []domain.NodeID {
	ids := make([]domain.NodeID, 0, len(t.parents))
	for id := range t.parents {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (t *Tracker) liveIDs() []domain.NodeID {
	ids := make([]domain.NodeID, 0, len(t.ids))
	for _, id := range t.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
