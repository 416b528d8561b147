package children_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/grove/internal/adapters/reactive"
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/engine/children"
)

// host plays the tree tracker: it owns the parent relation and forwards
// structural edits to the registry.
type host struct {
	t       *testing.T
	parents map[domain.NodeID]domain.NodeID
	rt      *reactive.Runtime
	reg     *children.Registry
}

func newHost(t *testing.T) *host {
	t.Helper()
	h := &host{
		t:       t,
		parents: make(map[domain.NodeID]domain.NodeID),
		rt:      reactive.New(),
	}
	h.reg = children.New(h, h.rt)
	return h
}

func (h *host) ParentOf(node domain.NodeID) (domain.NodeID, bool) {
	p, ok := h.parents[node]
	return p, ok
}

func (h *host) attach(parent, child domain.NodeID) {
	h.t.Helper()
	h.parents[child] = parent
	require.NoError(h.t, h.reg.AddChild(parent, child))
}

func (h *host) detach(parent, child domain.NodeID) {
	h.t.Helper()
	delete(h.parents, child)
	require.NoError(h.t, h.reg.RemoveChild(parent, child))
}

func (h *host) deep(node domain.NodeID) *children.Deep {
	h.t.Helper()
	d, err := h.reg.DeepChildren(node)
	require.NoError(h.t, err)
	return d
}

// closure computes the descendants of node straight from the shallow sets.
func (h *host) closure(node domain.NodeID) map[domain.NodeID]struct{} {
	out := make(map[domain.NodeID]struct{})
	var walk func(n domain.NodeID)
	walk = func(n domain.NodeID) {
		for c := range h.reg.Children(n).All() {
			out[c] = struct{}{}
			walk(c)
		}
	}
	walk(node)
	return out
}

func asSet(ids []domain.NodeID) map[domain.NodeID]struct{} {
	out := make(map[domain.NodeID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

const (
	nodeR domain.NodeID = iota
	nodeA
	nodeB
	nodeC
	nodeD
	nodeE
)
