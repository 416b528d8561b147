package domain

// TreeSpec is the desired shape of a tree as described by a tree file.
type TreeSpec struct {
	// Root names the node queries default to. It may be empty.
	Root InternedString
	// Nodes lists every declared node in file order.
	Nodes []NodeSpec
}

// NodeSpec declares one node and its direct children.
type NodeSpec struct {
	Name     InternedString
	Children []InternedString
}

// Edges returns every parent/child pair declared by the spec, in file order.
func (t *TreeSpec) Edges() []Edge {
	var edges []Edge
	for _, n := range t.Nodes {
		for _, c := range n.Children {
			edges = append(edges, Edge{Parent: n.Name, Child: c})
		}
	}
	return edges
}

// Names returns every node name mentioned by the spec, declared or referenced, in
// first-seen order.
func (t *TreeSpec) Names() []InternedString {
	seen := make(map[InternedString]struct{})
	var names []InternedString
	add := func(n InternedString) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	if !t.Root.IsZero() {
		add(t.Root)
	}
	for _, n := range t.Nodes {
		add(n.Name)
		for _, c := range n.Children {
			add(c)
		}
	}
	return names
}

// Edge is a single parent/child relationship.
type Edge struct {
	Parent InternedString
	Child  InternedString
}
