package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "data", "fittrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})

	storetest.RunBackendTests(t, s)
}

func TestStore_InMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	storetest.RunBackendTests(t, s)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fittrack.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	rec := storetest.NewRecord(store.KindStepsLogs, "2026-10-18", "")
	_, err = s.Put(ctx, rec)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// migrations are idempotent
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, store.KindStepsLogs, "2026-10-18", "")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.JSONEq(t, string(rec.Data), string(got.Data))
}
