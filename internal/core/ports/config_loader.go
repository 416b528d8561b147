package ports

import (
	"context"

	"go.trai.ch/grove/internal/core/domain"
)

// TreeLoader reads tree descriptions.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type TreeLoader interface {
	// Load reads and merges the tree files at paths, in order.
	Load(ctx context.Context, paths ...string) (*domain.TreeSpec, error)
}
