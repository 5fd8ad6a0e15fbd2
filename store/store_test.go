package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlviRownok/Chess-Knight-Paths/store"
)

func TestHistoryRecordAndRecent(t *testing.T) {
	h, err := store.OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Record("a1", "h8", 4, 6, 1.25))
	require.NoError(t, h.Record("e4", "e4", 1, 0, 0.03))

	records, err := h.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "e4", records[0].Start)
	assert.Equal(t, 0, records[0].Moves)
	assert.Equal(t, "a1", records[1].Start)
	assert.Equal(t, "h8", records[1].End)
	assert.Equal(t, 4, records[1].NumPaths)
	assert.Equal(t, 6, records[1].Moves)
	assert.InDelta(t, 1.25, records[1].DurationMs, 1e-9)
}

func TestHistoryRecentLimit(t *testing.T) {
	h, err := store.OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer h.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Record("a1", "b3", 1, 1, 0.1))
	}
	records, err := h.Recent(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := store.NewCache(mr.Addr(), time.Minute)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.Get(ctx, "a1", "h8")
	require.NoError(t, err)
	assert.False(t, ok, "empty cache misses")

	payload := []byte(`{"minMoves":6}`)
	require.NoError(t, c.Put(ctx, "a1", "h8", payload))

	got, ok, err := c.Get(ctx, "a1", "h8")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, got)

	// Different pair is still a miss.
	_, ok, err = c.Get(ctx, "a1", "g8")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := store.NewCache(mr.Addr(), time.Minute)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Put(ctx, "a1", "b3", []byte("x")))

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "a1", "b3")
	require.NoError(t, err)
	assert.False(t, ok, "entry expires after the TTL")
}
