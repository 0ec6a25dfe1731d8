// Package storetest holds the behaviour every store.Backend must share.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewRecord(kind store.Kind, date, key string) store.Record {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return store.Record{
		ID:        uuid.NewString(),
		Kind:      kind,
		Date:      date,
		Key:       key,
		Data:      []byte(`{"notes":"` + gofakeit.Word() + `"}`),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RunBackendTests exercises b, which must start empty.
func RunBackendTests(t *testing.T, b store.Backend) {
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, err := b.Get(ctx, store.KindStepsLogs, "2026-10-01", "")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("put keeps identity", func(t *testing.T) {
		first := NewRecord(store.KindBodyLogs, "2026-10-02", "")
		saved, err := b.Put(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, first.ID, saved.ID)

		second := NewRecord(store.KindBodyLogs, "2026-10-02", "")
		second.Data = []byte(`{"weightKg":80.5}`)
		saved, err = b.Put(ctx, second)
		require.NoError(t, err)
		assert.Equal(t, first.ID, saved.ID)
		assert.JSONEq(t, `{"weightKg":80.5}`, string(saved.Data))

		got, err := b.Get(ctx, store.KindBodyLogs, "2026-10-02", "")
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
		assert.True(t, first.CreatedAt.Equal(got.CreatedAt))
		assert.JSONEq(t, `{"weightKg":80.5}`, string(got.Data))
	})

	t.Run("list by range", func(t *testing.T) {
		for _, date := range []string{"2026-09-01", "2026-09-02", "2026-09-03"} {
			_, err := b.Put(ctx, NewRecord(store.KindRowLogs, date, "bench_press"))
			require.NoError(t, err)
		}
		_, err := b.Put(ctx, NewRecord(store.KindRowLogs, "2026-09-02", "arnold_press"))
		require.NoError(t, err)

		recs, err := b.List(ctx, store.KindRowLogs, store.Query{From: "2026-09-02", To: "2026-09-03"})
		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, "2026-09-02", recs[0].Date)
		assert.Equal(t, "arnold_press", recs[0].Key)
		assert.Equal(t, "bench_press", recs[1].Key)
		assert.Equal(t, "2026-09-03", recs[2].Date)

		all, err := b.List(ctx, store.KindRowLogs, store.Query{})
		require.NoError(t, err)
		assert.Len(t, all, 4)

		none, err := b.List(ctx, store.KindMealLogs, store.Query{})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := b.Put(ctx, NewRecord(store.KindMealLogs, "2026-10-03", "1"))
		require.NoError(t, err)
		require.NoError(t, b.Delete(ctx, store.KindMealLogs, "2026-10-03", "1"))

		_, err = b.Get(ctx, store.KindMealLogs, "2026-10-03", "1")
		assert.True(t, apperr.IsNotFound(err))
		assert.True(t, apperr.IsNotFound(b.Delete(ctx, store.KindMealLogs, "2026-10-03", "1")))
	})

	t.Run("replace all", func(t *testing.T) {
		records := []store.Record{
			NewRecord(store.KindSettings, "", "singleton"),
			NewRecord(store.KindStepsLogs, "2026-10-04", ""),
			NewRecord(store.KindStepsLogs, "2026-10-05", ""),
		}
		require.NoError(t, b.ReplaceAll(ctx, records))

		body, err := b.List(ctx, store.KindBodyLogs, store.Query{})
		require.NoError(t, err)
		assert.Empty(t, body)
		steps, err := b.List(ctx, store.KindStepsLogs, store.Query{})
		require.NoError(t, err)
		assert.Len(t, steps, 2)
		_, err = b.Get(ctx, store.KindSettings, "", "singleton")
		require.NoError(t, err)
	})

	t.Run("replace all is atomic", func(t *testing.T) {
		dup := NewRecord(store.KindBodyLogs, "2026-10-06", "")
		records := []store.Record{
			NewRecord(store.KindBodyLogs, "2026-10-07", ""),
			dup,
			NewRecord(store.KindBodyLogs, "2026-10-06", ""),
		}
		err := b.ReplaceAll(ctx, records)
		require.Error(t, err)

		// previous contents survive
		steps, err := b.List(ctx, store.KindStepsLogs, store.Query{})
		require.NoError(t, err)
		assert.Len(t, steps, 2)
		body, err := b.List(ctx, store.KindBodyLogs, store.Query{})
		require.NoError(t, err)
		assert.Empty(t, body)
	})
	t.Run("version moves on writes only", func(t *testing.T) {
		v0, err := b.Version(ctx)
		require.NoError(t, err)

		_, err = b.List(ctx, store.KindStepsLogs, store.Query{})
		require.NoError(t, err)
		_, err = b.Get(ctx, store.KindStepsLogs, "2026-10-04", "")
		require.NoError(t, err)
		v, err := b.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, v0, v, "reads")

		_, err = b.Put(ctx, NewRecord(store.KindStepsLogs, "2026-10-08", ""))
		require.NoError(t, err)
		v1, err := b.Version(ctx)
		require.NoError(t, err)
		assert.Greater(t, v1, v0, "put")

		require.NoError(t, b.Delete(ctx, store.KindStepsLogs, "2026-10-08", ""))
		v2, err := b.Version(ctx)
		require.NoError(t, err)
		assert.Greater(t, v2, v1, "delete")

		require.Error(t, b.ReplaceAll(ctx, []store.Record{
			NewRecord(store.KindBodyLogs, "2026-10-09", ""),
			NewRecord(store.KindBodyLogs, "2026-10-09", ""),
		}))
		v3, err := b.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, v2, v3, "failed replace all")

		require.NoError(t, b.ReplaceAll(ctx, []store.Record{NewRecord(store.KindSettings, "", "singleton")}))
		v4, err := b.Version(ctx)
		require.NoError(t, err)
		assert.Greater(t, v4, v3, "replace all")
	})
}
