package snapshot

import (
	"context"

	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/logger"
)

// Lister retrieves the raw snapshot listing document from the cluster.
// Implemented by the Elasticsearch client; mocked in tests.
type Lister interface {
	ListSnapshotsRaw(ctx context.Context) ([]byte, error)
}

// Fetcher resolves a filtered snapshot set, serving from the on-disk cache
// when possible and falling back to the cluster.
type Fetcher struct {
	lister Lister
	cache  *Cache
	log    *logger.Logger
}

// NewFetcher creates a fetcher over a listing source and a cache.
func NewFetcher(lister Lister, cache *Cache, log *logger.Logger) *Fetcher {
	return &Fetcher{
		lister: lister,
		cache:  cache,
		log:    log,
	}
}

// Fetch returns the snapshots matching pattern. Unless forceReload is set,
// a fresh-enough cache answers without any network call. On a cache miss
// the full listing is fetched, persisted unfiltered (so later runs with
// different patterns reuse it), and then filtered in memory.
func (f *Fetcher) Fetch(ctx context.Context, pattern string, forceReload bool) (Set, error) {
	if !forceReload {
		if listing := f.cache.Load(); listing != nil {
			f.log.Debugf("Using cached snapshot listing from %s", f.cache.Path())
			return Filter(listing, pattern), nil
		}
		f.log.Debugf("Snapshot cache unusable, fetching from cluster")
	}

	raw, err := f.lister.ListSnapshotsRaw(ctx)
	if err != nil {
		return nil, err
	}

	listing, err := ParseListing(raw)
	if err != nil {
		// Do not cache garbage.
		return nil, err
	}

	if err := f.cache.Store(raw); err != nil {
		return nil, err
	}
	f.log.Debugf("Cached %d snapshot(s) to %s", len(listing.Snapshots), f.cache.Path())

	return Filter(listing, pattern), nil
}
