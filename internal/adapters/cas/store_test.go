package cas_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grove/internal/adapters/cas"
	"go.trai.ch/grove/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	err = store.PutAll([]domain.Snapshot{
		{Node: "app", Size: 3, Leaves: 2, Digest: "00000000000000aa"},
		{Node: "body", Size: 1, Leaves: 1, Digest: "00000000000000bb"},
	})
	require.NoError(t, err)

	got, err := store.Get("app")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Size)
	assert.Equal(t, "00000000000000aa", got.Digest)
	assert.False(t, got.Timestamp.IsZero())

	_, err = uuid.Parse(got.RunID)
	require.NoError(t, err)

	body, err := store.Get("body")
	require.NoError(t, err)
	assert.Equal(t, got.RunID, body.RunID)

	missing, err := store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_KeepsExplicitRunID(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.PutAll([]domain.Snapshot{{Node: "app", RunID: "run-1", Timestamp: ts}}))

	got, err := store.Get("app")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.RunID)
	assert.True(t, ts.Equal(got.Timestamp))
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nested", "state.json")

	store1, err := cas.NewStore(storePath)
	require.NoError(t, err)
	store1.SetClock(func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) })
	require.NoError(t, store1.PutAll([]domain.Snapshot{{Node: "list", Size: 2, Digest: "xyz"}}))

	store2, err := cas.NewStore(storePath)
	require.NoError(t, err)

	got, err := store2.Get("list")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "xyz", got.Digest)
	assert.Equal(t, 2024, got.Timestamp.Year())
}

func TestStore_OmitZero(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	store, err := cas.NewStore(storePath)
	require.NoError(t, err)

	require.NoError(t, store.PutAll([]domain.Snapshot{{Node: "leaf"}}))

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	require.NoError(t, err)

	jsonStr := string(content)
	assert.False(t, strings.Contains(jsonStr, `"size"`), jsonStr)
	assert.False(t, strings.Contains(jsonStr, `"digest"`), jsonStr)
	assert.Contains(t, jsonStr, `"leaf"`)
	assert.Contains(t, jsonStr, `"run_id"`)
}

func TestStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(storePath, []byte("{not json"), 0o600))

	_, err := cas.NewStore(storePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal snapshot store")
}

func TestStore_EmptyPutIsNoop(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	store, err := cas.NewStore(storePath)
	require.NoError(t, err)

	require.NoError(t, store.PutAll(nil))
	_, err = os.Stat(storePath)
	assert.True(t, os.IsNotExist(err))
}
