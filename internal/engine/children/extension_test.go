package children_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/engine/children"
)

// visits records every node fed to one extension instance.
type visits struct {
	nodes []domain.NodeID
}

func visitExtension(inits *int) children.Extension[*visits] {
	return children.Funcs[*visits]{
		Init: func() *visits {
			*inits++
			return &visits{}
		},
		Add: func(node domain.NodeID, data *visits) {
			data.nodes = append(data.nodes, node)
		},
	}
}

func counter() children.Extension[*int] {
	return children.Funcs[*int]{
		Init: func() *int { return new(int) },
		Add:  func(_ domain.NodeID, n *int) { *n++ },
	}
}

func TestExtension_CountsDescendants(t *testing.T) {
	h := newHost(t)
	count := children.Register(h.reg, counter())

	h.attach(nodeR, nodeA)
	h.attach(nodeA, nodeB)

	assert.Equal(t, 2, *count(h.deep(nodeR)))
	assert.Equal(t, 1, *count(h.deep(nodeA)))
	assert.Equal(t, 0, *count(h.deep(nodeB)))
}

func TestExtension_SeesExactlyTheDeepSet(t *testing.T) {
	h := newHost(t)
	inits := 0
	seen := children.Register(h.reg, visitExtension(&inits))

	// R -> {A, B}, A -> {C, D}, plus a shared C under B.
	h.attach(nodeR, nodeA)
	h.attach(nodeR, nodeB)
	h.attach(nodeA, nodeC)
	h.attach(nodeA, nodeD)
	require.NoError(t, h.reg.AddChild(nodeB, nodeC))

	for _, n := range []domain.NodeID{nodeR, nodeA, nodeB, nodeC} {
		d := h.deep(n)
		assert.Equal(t, d.Nodes().Slice(), seen(d).nodes, "node %d", n)
	}

	// Transitively computed children carry their own aggregate.
	aDeep := h.deep(nodeA)
	assert.Equal(t, []domain.NodeID{nodeC, nodeD}, seen(aDeep).nodes)
}

func TestExtension_RebuiltWithDeepSet(t *testing.T) {
	h := newHost(t)
	inits := 0
	seen := children.Register(h.reg, visitExtension(&inits))

	h.attach(nodeR, nodeA)
	first := h.deep(nodeR)
	initsAfterFirst := inits

	h.deep(nodeR)
	assert.Equal(t, initsAfterFirst, inits, "a cache hit does not rebuild extension data")

	h.attach(nodeR, nodeB)
	second := h.deep(nodeR)
	assert.Greater(t, inits, initsAfterFirst)
	assert.Equal(t, []domain.NodeID{nodeA}, seen(first).nodes)
	assert.Equal(t, []domain.NodeID{nodeA, nodeB}, seen(second).nodes)
}

func TestExtension_InitDataPerNewRecord(t *testing.T) {
	h := newHost(t)
	inits := 0
	children.Register(h.reg, visitExtension(&inits))

	h.reg.Children(nodeR)
	assert.Equal(t, 1, inits)
	h.reg.Children(nodeR)
	assert.Equal(t, 1, inits, "existing records are not reinitialized")
}

func TestExtension_RunInRegistrationOrder(t *testing.T) {
	h := newHost(t)

	var order []string
	record := func(name string) children.Extension[struct{}] {
		return children.Funcs[struct{}]{
			Init: func() struct{} { return struct{}{} },
			Add:  func(_ domain.NodeID, _ struct{}) { order = append(order, name) },
		}
	}
	children.Register(h.reg, record("first"))
	children.Register(h.reg, record("second"))
	assert.Equal(t, 2, h.reg.Extensions().Len())

	h.attach(nodeR, nodeA)
	h.deep(nodeR)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestExtension_LateRegistrationAppliesToNextRecomputation(t *testing.T) {
	h := newHost(t)
	h.attach(nodeR, nodeA)
	stale := h.deep(nodeR)

	count := children.Register(h.reg, counter())
	assert.Nil(t, count(stale), "results computed before registration carry no aggregate")
	assert.Nil(t, count(nil))

	h.attach(nodeR, nodeB)
	assert.Equal(t, 2, *count(h.deep(nodeR)))
}

func TestExtension_IndependentRegistries(t *testing.T) {
	h1 := newHost(t)
	h2 := newHost(t)
	count := children.Register(h1.reg, counter())

	h1.attach(nodeR, nodeA)
	h2.attach(nodeR, nodeA)

	assert.Equal(t, 1, *count(h1.deep(nodeR)))
	assert.Nil(t, count(h2.deep(nodeR)))
	assert.Equal(t, 0, h2.reg.Extensions().Len())
}

func TestExtension_NilInterfaceData(t *testing.T) {
	h := newHost(t)

	var seen []domain.NodeID
	get := children.Register(h.reg, children.Funcs[any]{
		Init: func() any { return nil },
		Add: func(node domain.NodeID, data any) {
			assert.Nil(t, data)
			seen = append(seen, node)
		},
	})
	h.attach(nodeR, nodeA)
	h.attach(nodeA, nodeB)

	var d *children.Deep
	require.NotPanics(t, func() { d = h.deep(nodeR) })
	assert.Equal(t, []domain.NodeID{nodeA, nodeB}, d.Nodes().Slice())
	assert.Contains(t, seen, nodeA)
	assert.Contains(t, seen, nodeB)
	assert.Nil(t, get(d))
}

func TestExtension_PanicLeavesNodeDirty(t *testing.T) {
	h := newHost(t)
	children.Register(h.reg, children.Funcs[*int]{
		Init: func() *int { return new(int) },
		Add: func(node domain.NodeID, _ *int) {
			if node == nodeB {
				panic("aggregate failed")
			}
		},
	})
	h.attach(nodeR, nodeA)
	h.attach(nodeA, nodeB)

	assert.Panics(t, func() { _, _ = h.reg.DeepChildren(nodeR) })
	assert.True(t, h.reg.DeepDirty(nodeR))
	assert.False(t, h.rt.InBatch())
}
