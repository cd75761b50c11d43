package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLister is a scripted Lister for fetcher tests
type mockLister struct {
	raw   []byte
	err   error
	calls int
}

func (m *mockLister) ListSnapshotsRaw(_ context.Context) ([]byte, error) {
	m.calls++
	return m.raw, m.err
}

func newTestFetcher(t *testing.T, lister *mockLister) (*Fetcher, *Cache) {
	t.Helper()
	cache := NewCache(filepath.Join(t.TempDir(), "snapshotdat.json"), DefaultCacheMaxAge)
	return NewFetcher(lister, cache, logger.New(true, false)), cache
}

func TestFetcher_NetworkFetchOnEmptyCache(t *testing.T) {
	lister := &mockLister{raw: []byte(sampleListing)}
	fetcher, cache := newTestFetcher(t, lister)

	set, err := fetcher.Fetch(context.Background(), "test-*", false)

	require.NoError(t, err)
	assert.Equal(t, 1, lister.calls)

	// Filtered result
	assert.Len(t, set, 2)
	assert.Contains(t, set, "test-1")
	assert.Contains(t, set, "test-2")

	// Cache holds the full unfiltered listing
	cached := cache.Load()
	require.NotNil(t, cached)
	assert.Len(t, cached.Snapshots, 3)
}

func TestFetcher_ServesFromCache(t *testing.T) {
	lister := &mockLister{raw: []byte(sampleListing)}
	fetcher, cache := newTestFetcher(t, lister)

	require.NoError(t, cache.Store([]byte(sampleListing)))

	set, err := fetcher.Fetch(context.Background(), "prod-*", false)

	require.NoError(t, err)
	assert.Zero(t, lister.calls, "a usable cache must answer without a network call")
	assert.Len(t, set, 1)
	assert.Contains(t, set, "prod-1")
}

func TestFetcher_ForceReloadSkipsCache(t *testing.T) {
	lister := &mockLister{raw: []byte(sampleListing)}
	fetcher, cache := newTestFetcher(t, lister)

	require.NoError(t, cache.Store([]byte(`{"snapshots": [{"snapshot": "stale-entry"}]}`)))

	set, err := fetcher.Fetch(context.Background(), "*", true)

	require.NoError(t, err)
	assert.Equal(t, 1, lister.calls)
	assert.Len(t, set, 3)
	assert.NotContains(t, set, "stale-entry")
}

func TestFetcher_CorruptCacheFallsThroughToNetwork(t *testing.T) {
	lister := &mockLister{raw: []byte(sampleListing)}
	fetcher, cache := newTestFetcher(t, lister)

	require.NoError(t, os.WriteFile(cache.Path(), []byte("{{{"), 0o644))

	set, err := fetcher.Fetch(context.Background(), "*", false)

	require.NoError(t, err)
	assert.Equal(t, 1, lister.calls)
	assert.Len(t, set, 3)
}

func TestFetcher_MalformedLiveResponseIsFatal(t *testing.T) {
	lister := &mockLister{raw: []byte(`{"error": "no snapshots field"}`)}
	fetcher, cache := newTestFetcher(t, lister)

	_, err := fetcher.Fetch(context.Background(), "*", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	// Garbage must not be cached
	_, statErr := os.Stat(cache.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetcher_ListErrorPropagates(t *testing.T) {
	lister := &mockLister{err: errors.New("connection refused")}
	fetcher, _ := newTestFetcher(t, lister)

	_, err := fetcher.Fetch(context.Background(), "*", false)
	assert.Error(t, err)
}

func TestFetcher_NoMatchesIsNotAnError(t *testing.T) {
	lister := &mockLister{raw: []byte(sampleListing)}
	fetcher, _ := newTestFetcher(t, lister)

	set, err := fetcher.Fetch(context.Background(), "nothing-*", false)

	require.NoError(t, err)
	assert.Empty(t, set)
}
