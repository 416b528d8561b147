// Package aggregate provides the stock extensions of the children cache:
// subtree size, leaf count and a structural digest, all computed in the same
// pass that rebuilds a node's descendant set.
package aggregate

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/engine/children"
)

// Tree is the read-only view of the host tree the extensions consult.
type Tree interface {
	Name(node domain.NodeID) string
	ParentOf(node domain.NodeID) (domain.NodeID, bool)
	ChildCount(node domain.NodeID) int
}

// Summary holds the aggregates of one descendant set.
type Summary struct {
	Size   int
	Leaves int
	Digest string
}

// Set holds the accessors of the installed extensions.
type Set struct {
	size   children.Accessor[*int]
	leaves children.Accessor[*int]
	digest children.Accessor[*uint64]
}

// Install registers the size, leaf and digest extensions on reg.
func Install(reg *children.Registry, tree Tree) *Set {
	return &Set{
		size:   children.Register(reg, Size()),
		leaves: children.Register(reg, Leaves(tree)),
		digest: children.Register(reg, Digest(tree)),
	}
}

// Summarize reads every aggregate out of d. Aggregates d was computed
// without are reported as zero.
func (s *Set) Summarize(d *children.Deep) Summary {
	var sum Summary
	if n := s.size(d); n != nil {
		sum.Size = *n
	}
	if n := s.leaves(d); n != nil {
		sum.Leaves = *n
	}
	if h := s.digest(d); h != nil {
		sum.Digest = fmt.Sprintf("%016x", *h)
	}
	return sum
}

// Size counts descendants.
func Size() children.Extension[*int] {
	return children.Funcs[*int]{
		Init: func() *int { return new(int) },
		Add:  func(_ domain.NodeID, n *int) { *n++ },
	}
}

// Leaves counts descendants without children of their own.
func Leaves(tree Tree) children.Extension[*int] {
	return children.Funcs[*int]{
		Init: func() *int { return new(int) },
		Add: func(node domain.NodeID, n *int) {
			if tree.ChildCount(node) == 0 {
				*n++
			}
		},
	}
}

// Digest folds every parent/child edge below a node into one value. The
// result depends only on which edges are present, not on their order.
func Digest(tree Tree) children.Extension[*uint64] {
	hasher := xxhash.New()
	return children.Funcs[*uint64]{
		Init: func() *uint64 { return new(uint64) },
		Add: func(node domain.NodeID, sum *uint64) {
			hasher.Reset()
			if parent, ok := tree.ParentOf(node); ok {
				_, _ = hasher.WriteString(tree.Name(parent))
			}
			_, _ = hasher.Write([]byte{0}) // Separator
			_, _ = hasher.WriteString(tree.Name(node))
			*sum += hasher.Sum64()
		},
	}
}
