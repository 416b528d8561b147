package ports

import "go.trai.ch/grove/internal/core/domain"

// SnapshotStore defines the interface for storing and retrieving per-node snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the snapshot for a given node name.
	// Returns nil, nil if not found.
	Get(node string) (*domain.Snapshot, error)

	// PutAll stores the snapshots of one run, replacing earlier entries for the same nodes.
	PutAll(snapshots []domain.Snapshot) error
}
