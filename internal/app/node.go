package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/grove/internal/adapters/aggregate"          //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/reactive"           //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/tree"               //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			config.NodeID,
			reactive.NodeID,
			tree.NodeID,
			aggregate.NodeID,
			logger.NodeID,
			progrock.NodeID,
			cas.NodeID,
			watcher.NodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	files, err := graft.Dep[ports.TreeFiles](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.TreeLoader](ctx)
	if err != nil {
		return nil, err
	}

	rt, err := graft.Dep[ports.Reactive](ctx)
	if err != nil {
		return nil, err
	}

	tracker, err := graft.Dep[*tree.Tracker](ctx)
	if err != nil {
		return nil, err
	}

	aggregates, err := graft.Dep[*aggregate.Set](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	openStore, err := graft.Dep[cas.Opener](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	gatherer, err := graft.Dep[*prometheus.Registry](ctx)
	if err != nil {
		return nil, err
	}

	return New(files, loader, rt, tracker, aggregates, log, telemetry, openStore, newWatcher, gatherer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
