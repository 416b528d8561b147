// Package config provides the tree file loader for grove.
package config

import (
	"context"
	"os"
	"slices"
	"strings"

	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var _ ports.TreeLoader = (*Loader)(nil)

// Loader implements ports.TreeLoader for YAML tree files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load parses every file in paths concurrently and merges them, in argument
// order, into one tree description.
func (l *Loader) Load(ctx context.Context, paths ...string) (*domain.TreeSpec, error) {
	if len(paths) == 0 {
		return nil, zerr.Wrap(domain.ErrInvalidTreeFile, "no tree files given")
	}

	files := make([]*Treefile, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := parseFile(path)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	spec, err := merge(paths, files)
	if err != nil {
		return nil, err
	}
	if l.Logger != nil {
		l.Logger.Debug("loaded tree files", "files", len(paths), "nodes", len(spec.Nodes))
	}
	return spec, nil
}

func parseFile(path string) (*Treefile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read tree file"), "path", path)
	}

	var f Treefile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse tree file"), "path", path)
	}

	if err := treefileValidate.Struct(&f); err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrInvalidTreeFile, err.Error()), "path", path)
		return nil, wrapped
	}
	return &f, nil
}

// merge folds files into one spec. A node may be declared once across all
// files and a child may be listed under one parent only.
func merge(paths []string, files []*Treefile) (*domain.TreeSpec, error) {
	spec := &domain.TreeSpec{}
	declared := make(map[string]string)
	parents := make(map[string]string)

	for i, f := range files {
		if f.Root != "" {
			if !spec.Root.IsZero() && spec.Root.String() != f.Root {
				err := zerr.Wrap(domain.ErrInvalidTreeFile, "conflicting roots")
				err = zerr.With(err, "path", paths[i])
				return nil, zerr.With(err, "root", f.Root)
			}
			spec.Root = domain.NewInternedString(f.Root)
		}

		names := make([]string, 0, len(f.Nodes))
		for name := range f.Nodes {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			if prev, ok := declared[name]; ok {
				err := zerr.Wrap(domain.ErrDuplicateNode, "node declared twice")
				err = zerr.With(err, "node", name)
				err = zerr.With(err, "path", paths[i])
				return nil, zerr.With(err, "previous_path", prev)
			}
			declared[name] = paths[i]

			dto := f.Nodes[name]
			for _, child := range dto.Children {
				if prev, ok := parents[child]; ok {
					err := zerr.Wrap(domain.ErrInvalidTreeFile, "child listed under two parents")
					err = zerr.With(err, "node", child)
					err = zerr.With(err, "parent", name)
					return nil, zerr.With(err, "previous_parent", prev)
				}
				parents[child] = name
			}

			spec.Nodes = append(spec.Nodes, domain.NodeSpec{
				Name:     domain.NewInternedString(name),
				Children: domain.NewInternedStrings(dto.Children),
			})
		}
	}

	if err := checkAcyclic(parents); err != nil {
		return nil, err
	}
	return spec, nil
}

// checkAcyclic walks every parent chain and fails on the first one that
// revisits a node.
func checkAcyclic(parents map[string]string) error {
	names := make([]string, 0, len(parents))
	for name := range parents {
		names = append(names, name)
	}
	slices.Sort(names)

	done := make(map[string]bool, len(parents))
	for _, start := range names {
		var path []string
		onPath := make(map[string]bool)
		for cur, ok := start, true; ok && !done[cur]; cur, ok = parents[cur] {
			if onPath[cur] {
				i := slices.Index(path, cur)
				loop := append(slices.Clone(path[i:]), cur)
				err := zerr.Wrap(domain.ErrCycleDetected, "tree file contains a cycle")
				return zerr.With(err, "cycle", formatCycle(loop))
			}
			onPath[cur] = true
			path = append(path, cur)
		}
		for _, n := range path {
			done[n] = true
		}
	}
	return nil
}

// formatCycle renders a child-to-parent loop parent first.
func formatCycle(loop []string) string {
	slices.Reverse(loop)
	return strings.Join(loop, " -> ")
}
