package ports

import "go.trai.ch/grove/internal/core/domain"

// ParentResolver reports the current single parent of a node.
//
//go:generate go run go.uber.org/mock/mockgen -source=parents.go -destination=mocks/mock_parents.go -package=mocks
type ParentResolver interface {
	// ParentOf returns the parent of node and true, or false when node is a root.
	ParentOf(node domain.NodeID) (domain.NodeID, bool)
}
