// Package app implements the application layer for grove.
package app

import (
	"context"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/grove/internal/adapters/aggregate" //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/tree"      //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic. Its methods may be called
// concurrently; access to the tree is serialized.
type App struct {
	mu sync.Mutex

	files      ports.TreeFiles
	loader     ports.TreeLoader
	reactive   ports.Reactive
	tracker    *tree.Tracker
	aggregates *aggregate.Set
	logger     ports.Logger
	telemetry  ports.Telemetry
	openStore  cas.Opener
	newWatcher watcher.Factory
	metrics    prometheus.Gatherer
}

// New creates a new App instance.
func New(
	files ports.TreeFiles,
	loader ports.TreeLoader,
	reactive ports.Reactive,
	tracker *tree.Tracker,
	aggregates *aggregate.Set,
	log ports.Logger,
	telemetry ports.Telemetry,
	openStore cas.Opener,
	newWatcher watcher.Factory,
	gatherer prometheus.Gatherer,
) *App {
	return &App{
		files:      files,
		loader:     loader,
		reactive:   reactive,
		tracker:    tracker,
		aggregates: aggregates,
		logger:     log,
		telemetry:  telemetry,
		openStore:  openStore,
		newWatcher: newWatcher,
		metrics:    gatherer,
	}
}

// Options selects the tree files and the snapshot store for one operation.
type Options struct {
	Files []string
	State string
}

// DeepOptions configures the Deep method.
type DeepOptions struct {
	Options
	// Diff compares each digest against the previous run.
	Diff bool
}

// DeepResult is the descendant set of one node with its aggregates.
type DeepResult struct {
	Node        string
	Descendants []string
	Summary     aggregate.Summary
	// Cached reports that the descendant set was served without recomputation.
	Cached bool
	// Previous is the snapshot of the last run, set only when diffing.
	Previous *domain.Snapshot
	// Changed reports a digest differing from Previous, or no previous run.
	Changed bool
}

// Children returns the direct children of node.
func (a *App) Children(ctx context.Context, opts Options, node string) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.load(ctx, opts.Files); err != nil {
		return nil, err
	}

	id, err := a.tracker.Lookup(node)
	if err != nil {
		return nil, err
	}

	var names []string
	for child := range a.tracker.Registry().Children(id).All() {
		names = append(names, a.tracker.Name(child))
	}
	return names, nil
}

// Deep computes the descendants of every node in nodes, or of the tree's
// root when nodes is empty, and records their snapshots.
func (a *App) Deep(ctx context.Context, opts DeepOptions, nodes []string) ([]DeepResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cur, err := a.load(ctx, opts.Files)
	if err != nil {
		return nil, err
	}
	targets, err := targetsOf(cur.spec, nodes)
	if err != nil {
		return nil, err
	}

	store, err := a.openStore(opts.State)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open snapshot store")
	}

	results := make([]DeepResult, 0, len(targets))
	snapshots := make([]domain.Snapshot, 0, len(targets))
	for _, node := range targets {
		res, err := a.deep(ctx, node)
		if err != nil {
			return nil, err
		}

		if opts.Diff {
			prev, err := store.Get(node)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to read snapshot"), "node", node)
			}
			res.Previous = prev
			res.Changed = prev == nil || prev.Digest != res.Summary.Digest
		}

		results = append(results, res)
		snapshots = append(snapshots, domain.Snapshot{
			Node:   node,
			Size:   res.Summary.Size,
			Leaves: res.Summary.Leaves,
			Digest: res.Summary.Digest,
		})
	}

	if err := store.PutAll(snapshots); err != nil {
		return nil, zerr.Wrap(err, "failed to save snapshots")
	}
	return results, nil
}

// Stats computes the descendants of the selected nodes and returns the cache
// metrics gathered afterwards.
func (a *App) Stats(ctx context.Context, opts Options, nodes []string) ([]metrics.Sample, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cur, err := a.load(ctx, opts.Files)
	if err != nil {
		return nil, err
	}
	targets, err := targetsOf(cur.spec, nodes)
	if err != nil {
		return nil, err
	}
	for _, node := range targets {
		if _, err := a.deep(ctx, node); err != nil {
			return nil, err
		}
	}

	return metrics.Gather(a.metrics)
}

// deep reads the descendant set of node inside its own telemetry vertex.
// The caller must hold a.mu.
func (a *App) deep(ctx context.Context, node string) (res DeepResult, err error) {
	_, vertex := a.telemetry.Record(ctx, "deep "+node)
	defer func() { vertex.Complete(err) }()

	id, err := a.tracker.Lookup(node)
	if err != nil {
		return DeepResult{}, err
	}

	reg := a.tracker.Registry()
	hits := reg.Stats().Hits
	d, err := reg.DeepChildren(id)
	if err != nil {
		return DeepResult{}, zerr.With(zerr.Wrap(err, "failed to read descendants"), "node", node)
	}

	res = DeepResult{
		Node:        node,
		Descendants: make([]string, 0, d.Len()),
		Summary:     a.aggregates.Summarize(d),
		Cached:      reg.Stats().Hits > hits,
	}
	for n := range d.Nodes().All() {
		res.Descendants = append(res.Descendants, a.tracker.Name(n))
	}
	if res.Cached {
		vertex.Cached()
	}
	vertex.Log(domain.LogLevelDebug, "descendants: "+strconv.Itoa(d.Len()))
	return res, nil
}

// loaded is the outcome of one load.
type loaded struct {
	spec    *domain.TreeSpec
	changes tree.Changes
	files   []string
}

// load resolves and reads the tree files and reconciles the tracker with them.
// The caller must hold a.mu.
func (a *App) load(ctx context.Context, patterns []string) (loaded, error) {
	files, err := a.resolve(patterns)
	if err != nil {
		return loaded{}, err
	}
	return a.loadFiles(ctx, files)
}

func (a *App) resolve(patterns []string) ([]string, error) {
	files, err := a.files.Resolve(patterns)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve tree files")
	}
	return files, nil
}

// loadFiles reads already resolved tree files and reconciles the tracker with
// them. The caller must hold a.mu.
func (a *App) loadFiles(ctx context.Context, files []string) (loaded, error) {
	spec, err := a.loader.Load(ctx, files...)
	if err != nil {
		return loaded{files: files}, zerr.Wrap(err, "failed to load tree files")
	}

	changes, err := a.tracker.Apply(spec)
	if err != nil {
		return loaded{files: files, changes: changes}, zerr.Wrap(err, "failed to apply tree")
	}
	if !changes.Empty() {
		a.logger.Debug("applied tree",
			"added", changes.Added,
			"attached", changes.Attached,
			"detached", changes.Detached,
			"freed", changes.Freed,
		)
	}
	return loaded{spec: spec, changes: changes, files: files}, nil
}

func targetsOf(spec *domain.TreeSpec, nodes []string) ([]string, error) {
	if len(nodes) > 0 {
		return nodes, nil
	}
	if !spec.Root.IsZero() {
		return []string{spec.Root.String()}, nil
	}
	return nil, domain.ErrNoTargetsSpecified
}
