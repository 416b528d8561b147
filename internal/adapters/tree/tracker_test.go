package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grove/internal/adapters/reactive"
	"go.trai.ch/grove/internal/adapters/tree"
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/zerr"
)

func names(t *testing.T, tr *tree.Tracker, ids []domain.NodeID) []string {
	t.Helper()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, tr.Name(id))
	}
	return out
}

func deepNames(t *testing.T, tr *tree.Tracker, name string) []string {
	t.Helper()
	id, err := tr.Lookup(name)
	require.NoError(t, err)
	d, err := tr.Registry().DeepChildren(id)
	require.NoError(t, err)
	return names(t, tr, d.Nodes().Slice())
}

func spec(root string, nodes ...domain.NodeSpec) *domain.TreeSpec {
	return &domain.TreeSpec{Root: domain.NewInternedString(root), Nodes: nodes}
}

func node(name string, children ...string) domain.NodeSpec {
	return domain.NodeSpec{
		Name:     domain.NewInternedString(name),
		Children: domain.NewInternedStrings(children),
	}
}

func TestTracker_NodeAllocatesDenseIDs(t *testing.T) {
	tr := tree.New(reactive.New())

	a := tr.Node(domain.NewInternedString("a"))
	b := tr.Node(domain.NewInternedString("b"))

	assert.Equal(t, domain.NodeID(0), a)
	assert.Equal(t, domain.NodeID(1), b)
	assert.Equal(t, a, tr.Node(domain.NewInternedString("a")))
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, "b", tr.Name(b))
	assert.Empty(t, tr.Name(42))
}

func TestTracker_LookupUnknown(t *testing.T) {
	tr := tree.New(reactive.New())

	_, err := tr.Lookup("missing")
	require.ErrorIs(t, err, domain.ErrUnknownNode)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "missing", zErr.Metadata()["node"])
}

func TestTracker_AttachDetach(t *testing.T) {
	tr := tree.New(reactive.New())
	r := tr.Node(domain.NewInternedString("r"))
	a := tr.Node(domain.NewInternedString("a"))
	b := tr.Node(domain.NewInternedString("b"))

	require.NoError(t, tr.Attach(r, a))
	require.NoError(t, tr.Attach(a, b))

	p, ok := tr.ParentOf(b)
	assert.True(t, ok)
	assert.Equal(t, a, p)
	assert.Equal(t, 1, tr.ChildCount(r))
	assert.Equal(t, []string{"a", "b"}, deepNames(t, tr, "r"))

	require.NoError(t, tr.Detach(b))
	_, ok = tr.ParentOf(b)
	assert.False(t, ok)
	assert.Equal(t, 0, tr.ChildCount(a))
	assert.Equal(t, []string{"a"}, deepNames(t, tr, "r"))
}

func TestTracker_AttachErrors(t *testing.T) {
	tr := tree.New(reactive.New())
	r := tr.Node(domain.NewInternedString("r"))
	a := tr.Node(domain.NewInternedString("a"))
	b := tr.Node(domain.NewInternedString("b"))
	require.NoError(t, tr.Attach(r, a))
	require.NoError(t, tr.Attach(a, b))

	t.Run("second parent", func(t *testing.T) {
		err := tr.Attach(r, b)
		require.ErrorIs(t, err, domain.ErrNodeAlreadyAttached)

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "b", zErr.Metadata()["node"])
		assert.Equal(t, "a", zErr.Metadata()["parent"])
	})

	t.Run("under own descendant", func(t *testing.T) {
		require.ErrorIs(t, tr.Attach(b, r), domain.ErrCycleDetected)
	})

	t.Run("self", func(t *testing.T) {
		c := tr.Node(domain.NewInternedString("c"))
		require.ErrorIs(t, tr.Attach(c, c), domain.ErrCycleDetected)
	})

	t.Run("detach root", func(t *testing.T) {
		require.ErrorIs(t, tr.Detach(r), domain.ErrNodeNotAttached)
	})

	assert.Equal(t, []string{"a", "b"}, deepNames(t, tr, "r"))
}

func TestTracker_FreeRecyclesID(t *testing.T) {
	tr := tree.New(reactive.New())
	r := tr.Node(domain.NewInternedString("r"))
	a := tr.Node(domain.NewInternedString("a"))
	require.NoError(t, tr.Attach(r, a))

	require.ErrorIs(t, tr.Free(r), domain.ErrNodeHasChildren)

	require.NoError(t, tr.Free(a))
	assert.Empty(t, tr.Name(a), "freed slot must not keep its name")
	assert.Equal(t, 0, tr.ChildCount(r))
	assert.Equal(t, 1, tr.Len())
	_, err := tr.Lookup("a")
	require.ErrorIs(t, err, domain.ErrUnknownNode)
	require.ErrorIs(t, tr.Free(a), domain.ErrUnknownNode)

	z := tr.Node(domain.NewInternedString("z"))
	assert.Equal(t, a, z)
	assert.Empty(t, deepNames(t, tr, "r"))
	assert.Equal(t, int64(1), tr.Registry().Stats().Records)
}

func TestTracker_Apply(t *testing.T) {
	tr := tree.New(reactive.New())

	changes, err := tr.Apply(spec("r",
		node("r", "a", "b"),
		node("a", "c"),
	))
	require.NoError(t, err)
	assert.Equal(t, tree.Changes{Added: 4, Attached: 3}, changes)
	assert.Equal(t, []string{"a", "c", "b"}, deepNames(t, tr, "r"))

	t.Run("unchanged", func(t *testing.T) {
		changes, err := tr.Apply(spec("r",
			node("r", "a", "b"),
			node("a", "c"),
		))
		require.NoError(t, err)
		assert.True(t, changes.Empty())
	})

	t.Run("move and drop", func(t *testing.T) {
		before := tr.Registry().Stats()

		changes, err := tr.Apply(spec("r",
			node("r", "a"),
			node("a", "c", "d"),
		))
		require.NoError(t, err)
		assert.Equal(t, tree.Changes{Added: 1, Attached: 1, Detached: 1, Freed: 1}, changes)
		assert.Equal(t, []string{"a", "c", "d"}, deepNames(t, tr, "r"))

		_, err = tr.Lookup("b")
		require.ErrorIs(t, err, domain.ErrUnknownNode)

		after := tr.Registry().Stats()
		assert.Equal(t, before.Mutations+2, after.Mutations)
	})
}

func TestTracker_ApplyRejectsTwoParents(t *testing.T) {
	tr := tree.New(reactive.New())

	_, err := tr.Apply(spec("r",
		node("r", "a", "b"),
		node("b", "a"),
	))
	require.ErrorIs(t, err, domain.ErrNodeAlreadyAttached)
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_ApplyIsOneBatch(t *testing.T) {
	rt := reactive.New()
	tr := tree.New(rt)
	_, err := tr.Apply(spec("r", node("r", "a")))
	require.NoError(t, err)

	r, err := tr.Lookup("r")
	require.NoError(t, err)
	var sigs int
	for _, s := range rt.Track(func() {
		_, err := tr.Registry().DeepChildren(r)
		require.NoError(t, err)
	}) {
		s.Subscribe(func() { sigs++ })
	}

	_, err = tr.Apply(spec("r", node("r", "a", "b"), node("a", "c")))
	require.NoError(t, err)

	// Both edits dirty r; the notification is delivered once, after the batch.
	assert.Equal(t, 1, sigs)
}
