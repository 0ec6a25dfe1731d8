package memory

import (
	"context"
	"testing"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	storetest.RunBackendTests(t, New())
}

func TestStore_Unavailable(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.Put(ctx, storetest.NewRecord(store.KindStepsLogs, "2026-10-18", ""))
	require.NoError(t, err)

	s.SetUnavailable(true)
	_, err = s.Get(ctx, store.KindStepsLogs, "2026-10-18", "")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = s.List(ctx, store.KindStepsLogs, store.Query{})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, s.ReplaceAll(ctx, nil), ErrUnavailable)

	s.SetUnavailable(false)
	assert.Equal(t, 1, s.Len())
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.Put(ctx, storetest.NewRecord(store.KindBodyLogs, "2026-10-18", ""))
	require.NoError(t, err)

	got, err := s.Get(ctx, store.KindBodyLogs, "2026-10-18", "")
	require.NoError(t, err)
	got.Data[0] = 'X'

	again, err := s.Get(ctx, store.KindBodyLogs, "2026-10-18", "")
	require.NoError(t, err)
	assert.Equal(t, byte('{'), again.Data[0])
}
