package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/grove/internal/adapters/telemetry/progrock"
	"go.trai.ch/grove/internal/core/ports"
)

// tapeWriter keeps every status update it is handed.
type tapeWriter struct {
	mu      sync.Mutex
	updates []*vprogrock.StatusUpdate
	closed  bool
}

func (w *tapeWriter) WriteStatus(u *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, u)
	return nil
}

func (w *tapeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *tapeWriter) vertexIDs(name string) map[string]struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	ids := make(map[string]struct{})
	for _, u := range w.updates {
		for _, v := range u.Vertexes {
			if v.Name == name {
				ids[v.Id] = struct{}{}
			}
		}
	}
	return ids
}

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_RecordAttachesVertexToContext(t *testing.T) {
	recorder := progrock.NewRecorder(&tapeWriter{})

	ctx, vertex := recorder.Record(context.Background(), "deep app")
	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, got)
}

func TestRecorder_SameNameGetsDistinctVertices(t *testing.T) {
	w := &tapeWriter{}
	recorder := progrock.NewRecorder(w)

	_, first := recorder.Record(context.Background(), "apply tree")
	first.Complete(nil)
	_, second := recorder.Record(context.Background(), "apply tree")
	second.Complete(errors.New("boom"))

	require.NoError(t, recorder.Close())
	assert.True(t, w.closed)
	assert.Len(t, w.vertexIDs("apply tree"), 2)
}
