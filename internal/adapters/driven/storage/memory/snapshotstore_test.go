package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

func TestSnapshotStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore()
	started := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.BeginRun(ctx, domain.ExportRun{ID: "run-1", StartedAt: started}))
	require.NoError(t, store.SaveSnapshot(ctx, domain.Snapshot{
		RunID: "run-1", Route: "/articles", Kind: domain.KindBlogIndex, Payload: []byte(`{"title":"Articles"}`),
	}))
	require.NoError(t, store.SaveSnapshot(ctx, domain.Snapshot{
		RunID: "run-1", Route: "/", Kind: domain.KindHome, Payload: []byte(`{}`),
	}))

	_, err := store.LatestRun(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound, "unfinished runs are not reported")

	require.NoError(t, store.FinishRun(ctx, "run-1", started.Add(time.Second), 2))

	run, err := store.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, 2, run.Routes)

	snap, err := store.GetSnapshot(ctx, "run-1", "/articles")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Articles"}`, string(snap.Payload))

	list, err := store.ListSnapshots(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "/", list[0].Route)
	assert.Equal(t, "/articles", list[1].Route)
}

func TestSnapshotStore_LatestRunWins(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore()
	base := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "new"} {
		require.NoError(t, store.BeginRun(ctx, domain.ExportRun{ID: id, StartedAt: base}))
		require.NoError(t, store.FinishRun(ctx, id, base.Add(time.Duration(i+1)*time.Minute), 0))
	}

	run, err := store.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", run.ID)
}

func TestSnapshotStore_DeleteRun(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore()

	require.NoError(t, store.BeginRun(ctx, domain.ExportRun{ID: "run-1", StartedAt: time.Now()}))
	require.NoError(t, store.SaveSnapshot(ctx, domain.Snapshot{RunID: "run-1", Route: "/", Payload: []byte(`{}`)}))

	require.NoError(t, store.DeleteRun(ctx, "run-1"))

	_, err := store.GetSnapshot(ctx, "run-1", "/")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.FinishRun(ctx, "run-1", time.Now(), 1), domain.ErrNotFound)
	assert.NoError(t, store.DeleteRun(ctx, "run-1"), "deleting twice is fine")
}

func TestSnapshotStore_UnknownRun(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore()

	err := store.SaveSnapshot(ctx, domain.Snapshot{RunID: "nope", Route: "/"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = store.FinishRun(ctx, "nope", time.Now(), 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.GetSnapshot(ctx, "nope", "/")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := store.ListSnapshots(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, list)
}
