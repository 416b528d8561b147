// Package tree implements the host side of the children cache: it assigns
// node ids, owns the single-parent relation and forwards every structural
// edit to a children.Registry.
package tree

import (
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports"
	"go.trai.ch/grove/internal/engine/children"
	"go.trai.ch/zerr"
)

var _ ports.ParentResolver = (*Tracker)(nil)

// Tracker maps node names to dense ids and keeps each node's parent.
// It is not safe for concurrent use.
type Tracker struct {
	reactive ports.Reactive
	children *children.Registry

	names   []domain.InternedString
	ids     map[domain.InternedString]domain.NodeID
	parents map[domain.NodeID]domain.NodeID
	fanout  map[domain.NodeID]int
	free    []domain.NodeID
}

// New creates an empty Tracker together with the Registry it drives.
func New(reactive ports.Reactive) *Tracker {
	t := &Tracker{
		reactive: reactive,
		ids:      make(map[domain.InternedString]domain.NodeID),
		parents:  make(map[domain.NodeID]domain.NodeID),
		fanout:   make(map[domain.NodeID]int),
	}
	t.children = children.New(t, reactive)
	return t
}

// Registry returns the children registry kept in sync with t.
func (t *Tracker) Registry() *children.Registry {
	return t.children
}

// Len returns the number of live nodes.
func (t *Tracker) Len() int {
	return len(t.ids)
}

// Node returns the id of name, allocating one on first use.
func (t *Tracker) Node(name domain.InternedString) domain.NodeID {
	if id, ok := t.ids[name]; ok {
		return id
	}

	var id domain.NodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
		t.names[id] = name
	} else {
		id = domain.NodeID(len(t.names))
		t.names = append(t.names, name)
	}
	t.ids[name] = id
	return id
}

// Lookup returns the id of an existing node.
func (t *Tracker) Lookup(name string) (domain.NodeID, error) {
	id, ok := t.ids[domain.NewInternedString(name)]
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrUnknownNode, "failed to look up node"), "node", name)
	}
	return id, nil
}

// Name returns the name of id, or "" for ids that are not live.
func (t *Tracker) Name(id domain.NodeID) string {
	if int(id) >= len(t.names) {
		return ""
	}
	return t.names[id].String()
}

// ParentOf returns the parent of id.
func (t *Tracker) ParentOf(id domain.NodeID) (domain.NodeID, bool) {
	p, ok := t.parents[id]
	return p, ok
}

// ChildCount returns the number of direct children of id.
func (t *Tracker) ChildCount(id domain.NodeID) int {
	return t.fanout[id]
}

// Attach makes child a direct child of parent.
func (t *Tracker) Attach(parent, child domain.NodeID) error {
	if p, ok := t.parents[child]; ok {
		err := zerr.Wrap(domain.ErrNodeAlreadyAttached, "failed to attach node")
		err = zerr.With(err, "node", t.Name(child))
		return zerr.With(err, "parent", t.Name(p))
	}
	for cur, ok := parent, true; ok; cur, ok = t.parents[cur] {
		if cur == child {
			err := zerr.Wrap(domain.ErrCycleDetected, "failed to attach node")
			err = zerr.With(err, "node", t.Name(child))
			return zerr.With(err, "parent", t.Name(parent))
		}
	}

	return t.reactive.Batch(func() error {
		t.parents[child] = parent
		t.fanout[parent]++
		return t.children.AddChild(parent, child)
	})
}

// Detach removes child from its parent.
func (t *Tracker) Detach(child domain.NodeID) error {
	parent, ok := t.parents[child]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrNodeNotAttached, "failed to detach node"), "node", t.Name(child))
	}

	return t.reactive.Batch(func() error {
		delete(t.parents, child)
		if t.fanout[parent]--; t.fanout[parent] == 0 {
			delete(t.fanout, parent)
		}
		return t.children.RemoveChild(parent, child)
	})
}

// Free detaches id, releases its record and recycles the id.
// Nodes with children cannot be freed.
func (t *Tracker) Free(id domain.NodeID) error {
	if !t.live(id) {
		return zerr.With(zerr.Wrap(domain.ErrUnknownNode, "failed to free node"), "node", id.String())
	}
	name := t.Name(id)
	if t.fanout[id] > 0 {
		return zerr.With(zerr.Wrap(domain.ErrNodeHasChildren, "failed to free node"), "node", name)
	}
	if _, ok := t.parents[id]; ok {
		if err := t.Detach(id); err != nil {
			return err
		}
	}

	t.children.Release(id)
	delete(t.ids, t.names[id])
	t.names[id] = domain.InternedString{}
	t.free = append(t.free, id)
	return nil
}

func (t *Tracker) live(id domain.NodeID) bool {
	return int(id) < len(t.names) && !t.names[id].IsZero()
}
