package app

import (
	"context"

	"go.trai.ch/zerr"
)

// Watch reports the descendants of node, then reloads the tree files on every
// change and reports them again whenever the node's descendant set was
// invalidated. Changes that leave the files' contents as they were are
// skipped. The watched files are resolved once, when watching starts.
// It returns when ctx is cancelled or onUpdate fails.
func (a *App) Watch(ctx context.Context, opts Options, node string, onUpdate func(DeepResult) error) error {
	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	files, err := a.resolve(opts.Files)
	if err != nil {
		return err
	}
	// Fingerprints are taken before reading so that an edit landing during a
	// load is seen as a change on the next event.
	fingerprint := a.fingerprint(files)

	a.mu.Lock()
	_, err = a.loadFiles(ctx, files)
	a.mu.Unlock()
	if err != nil {
		return err
	}

	s := &session{app: a, node: node}
	defer func() {
		a.mu.Lock()
		s.cancel()
		a.mu.Unlock()
	}()
	if err := s.refresh(ctx, onUpdate); err != nil {
		return err
	}

	if err := w.Start(ctx, files...); err != nil {
		return zerr.Wrap(err, "failed to watch tree files")
	}
	a.logger.Info("watching tree files", "files", len(files), "node", node)

	for paths := range w.Changes() {
		a.logger.Debug("tree files changed", "paths", paths)

		fp := a.fingerprint(files)
		if fp != "" && fp == fingerprint {
			a.logger.Debug("tree files unchanged")
			continue
		}

		a.mu.Lock()
		next, err := a.loadFiles(ctx, files)
		// Added or freed nodes may have replaced the watched node's record.
		dirty := s.dirty || next.changes.Added > 0 || next.changes.Freed > 0
		a.mu.Unlock()
		fingerprint = fp
		if err != nil {
			a.logger.Warn("ignoring invalid tree", "error", err)
			continue
		}
		if !dirty {
			continue
		}
		if err := s.refresh(ctx, onUpdate); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// fingerprint returns the content digest of files, or "" when any of them
// cannot be read.
func (a *App) fingerprint(files []string) string {
	fp, err := a.files.Fingerprint(files)
	if err != nil {
		return ""
	}
	return fp
}

// session tracks the signals the watched node's last read depended on.
type session struct {
	app     *App
	node    string
	cancels []func()

	// dirty is guarded by app.mu.
	dirty bool
}

// refresh reads the node again, reports it and resubscribes to the signals
// observed during the read.
func (s *session) refresh(ctx context.Context, onUpdate func(DeepResult) error) error {
	var (
		res     DeepResult
		readErr error
	)
	s.app.mu.Lock()
	s.cancel()
	signals := s.app.reactive.Track(func() {
		res, readErr = s.app.deep(ctx, s.node)
	})
	for _, sig := range signals {
		s.cancels = append(s.cancels, sig.Subscribe(func() { s.dirty = true }))
	}
	// A failed read is retried on the next change.
	s.dirty = readErr != nil
	s.app.mu.Unlock()

	if readErr != nil {
		s.app.logger.Warn("node unavailable", "node", s.node, "error", readErr)
		return nil
	}
	return onUpdate(res)
}

// cancel drops the current subscriptions. The caller must hold app.mu.
func (s *session) cancel() {
	for _, c := range s.cancels {
		c()
	}
	s.cancels = nil
}
