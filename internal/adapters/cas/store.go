// Package cas implements the snapshot store that remembers the aggregates of
// the previous run.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.trai.ch/grove/internal/core/domain"
	"go.trai.ch/grove/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Snapshot
	now   func() time.Time
}

// NewStore creates a new SnapshotStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Snapshot),
		now:   time.Now,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read snapshot store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := sonic.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal snapshot store"), "path", s.path)
	}

	return nil
}

// save writes the cache to disk. The caller must hold s.mu.
func (s *Store) save() error {
	data, err := sonic.ConfigStd.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for snapshot store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write snapshot store")
	}

	return nil
}

// Get retrieves the snapshot for a given node name.
func (s *Store) Get(node string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.cache[node]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

// PutAll stores the snapshots of one run. Snapshots without a run id share a
// freshly generated one; missing timestamps are set to the current time.
func (s *Store) PutAll(snapshots []domain.Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	runID := uuid.NewString()
	now := s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, snap := range snapshots {
		if snap.RunID == "" {
			snap.RunID = runID
		}
		if snap.Timestamp.IsZero() {
			snap.Timestamp = now
		}
		s.cache[snap.Node] = snap
	}

	return s.save()
}
