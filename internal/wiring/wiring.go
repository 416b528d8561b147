// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/grove/internal/adapters/aggregate"
	_ "go.trai.ch/grove/internal/adapters/cas"
	_ "go.trai.ch/grove/internal/adapters/config"
	_ "go.trai.ch/grove/internal/adapters/fs"
	_ "go.trai.ch/grove/internal/adapters/logger"
	_ "go.trai.ch/grove/internal/adapters/metrics"
	_ "go.trai.ch/grove/internal/adapters/reactive"
	_ "go.trai.ch/grove/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/grove/internal/adapters/tree"
	_ "go.trai.ch/grove/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/grove/internal/app"
)
