package children_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grove/internal/adapters/reactive"
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports/mocks"
	"go.trai.ch/grove/internal/engine/children"
	"go.uber.org/mock/gomock"
)

func TestInvalidate_ReachesEveryAncestorOnly(t *testing.T) {
	h := newHost(t)
	// R -> A -> B -> C, R -> D -> E
	h.attach(nodeR, nodeA)
	h.attach(nodeA, nodeB)
	h.attach(nodeB, nodeC)
	h.attach(nodeR, nodeD)
	h.attach(nodeD, nodeE)
	h.deep(nodeR)

	for _, n := range []domain.NodeID{nodeR, nodeA, nodeB, nodeC, nodeD, nodeE} {
		require.False(t, h.reg.DeepDirty(n))
	}

	h.attach(nodeB, 9)

	assert.True(t, h.reg.DeepDirty(nodeB))
	assert.True(t, h.reg.DeepDirty(nodeA))
	assert.True(t, h.reg.DeepDirty(nodeR))
	assert.False(t, h.reg.DeepDirty(nodeC), "descendants stay clean")
	assert.False(t, h.reg.DeepDirty(nodeD), "siblings stay clean")
	assert.False(t, h.reg.DeepDirty(nodeE))
}

func TestInvalidate_WalksPastDirtyAncestors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parents := mocks.NewMockParentResolver(ctrl)
	reg := children.New(parents, reactive.New())

	// Each mutation walks B -> A -> R regardless of what is already dirty.
	gomock.InOrder(
		parents.EXPECT().ParentOf(nodeB).Return(nodeA, true),
		parents.EXPECT().ParentOf(nodeA).Return(nodeR, true),
		parents.EXPECT().ParentOf(nodeR).Return(domain.NodeID(0), false),
		parents.EXPECT().ParentOf(nodeB).Return(nodeA, true),
		parents.EXPECT().ParentOf(nodeA).Return(nodeR, true),
		parents.EXPECT().ParentOf(nodeR).Return(domain.NodeID(0), false),
	)

	require.NoError(t, reg.AddChild(nodeB, nodeC))
	require.NoError(t, reg.AddChild(nodeB, nodeD))
	assert.Equal(t, uint64(6), reg.Stats().Invalidations)
}

func TestInvalidate_NoOpEditsSkipInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parents := mocks.NewMockParentResolver(ctrl)
	reg := children.New(parents, reactive.New())

	parents.EXPECT().ParentOf(nodeA).Return(domain.NodeID(0), false).Times(1)
	require.NoError(t, reg.AddChild(nodeA, nodeB))

	// Neither a duplicate insert nor removing an absent child touches the parent relation.
	require.NoError(t, reg.AddChild(nodeA, nodeB))
	require.NoError(t, reg.RemoveChild(nodeA, nodeC))

	assert.Equal(t, uint64(1), reg.Stats().Mutations)
}

func TestInvalidate_ParentCycleIsReported(t *testing.T) {
	h := newHost(t)
	h.parents[nodeA] = nodeB
	h.parents[nodeB] = nodeA

	err := h.reg.AddChild(nodeA, nodeC)
	assert.ErrorIs(t, err, domain.ErrParentCycle)
}
