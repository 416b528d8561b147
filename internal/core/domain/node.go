// Package domain contains the core domain types shared by the children cache and its collaborators.
package domain

import (
	"iter"
	"slices"
	"strconv"
)

// NodeID is a dense, host-assigned handle identifying one node of a tree.
// The host tree tracker owns assignment and reclamation of ids.
type NodeID uint32

// String returns the decimal form of the id.
func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// NodeSet is an insertion-ordered set of node ids.
// The zero value is an empty set ready for use.
type NodeSet struct {
	items []NodeID
	index map[NodeID]int
}

// NewNodeSet creates an empty set with room for n members.
func NewNodeSet(n int) *NodeSet {
	return &NodeSet{
		items: make([]NodeID, 0, n),
		index: make(map[NodeID]int, n),
	}
}

// Add inserts id at the end of the set.
// It reports whether the set changed.
func (s *NodeSet) Add(id NodeID) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[NodeID]int)
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, id)
	return true
}

// Remove deletes id from the set, keeping the order of the remaining members.
// It reports whether the set changed.
func (s *NodeSet) Remove(id NodeID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	delete(s.index, id)
	s.items = slices.Delete(s.items, i, i+1)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
	return true
}

// Has reports whether id is a member of the set.
func (s *NodeSet) Has(id NodeID) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Len returns the number of members.
func (s *NodeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All returns an iterator over the members in insertion order.
func (s *NodeSet) All() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if s == nil {
			return
		}
		for _, id := range s.items {
			if !yield(id) {
				return
			}
		}
	}
}

// Slice returns a copy of the members in insertion order, or nil when empty.
func (s *NodeSet) Slice() []NodeID {
	if s.Len() == 0 {
		return nil
	}
	return slices.Clone(s.items)
}
