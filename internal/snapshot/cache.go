package snapshot

import (
	"fmt"
	"os"
	"time"
)

const (
	// DefaultCachePath is the snapshot listing cache file, relative to the
	// working directory for compatibility with existing invocations.
	DefaultCachePath = "snapshotdat.json"

	// DefaultCacheMaxAge is how old the cache file may be before it is
	// treated as absent.
	DefaultCacheMaxAge = 24 * time.Hour

	cacheFileMode = 0o644
)

// Cache persists the last full unfiltered snapshot listing on disk. The
// file's own modification time is the sole staleness signal; the content
// carries no schema or version field.
type Cache struct {
	path   string
	maxAge time.Duration
}

// NewCache creates a cache for the given file path and staleness window.
func NewCache(path string, maxAge time.Duration) *Cache {
	return &Cache{
		path:   path,
		maxAge: maxAge,
	}
}

// Path returns the cache file path.
func (c *Cache) Path() string {
	return c.path
}

// Load returns the cached listing, or nil if the cache cannot be used:
// file absent, unreadable, older than the staleness window, or not a
// parseable listing. All of those are soft misses, never errors, so a
// fetch can always fall through to the network.
func (c *Cache) Load() *Listing {
	info, err := os.Stat(c.path)
	if err != nil {
		return nil
	}
	if time.Since(info.ModTime()) > c.maxAge {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil
	}

	listing, err := ParseListing(data)
	if err != nil {
		return nil
	}
	return listing
}

// Store overwrites the cache file with the raw listing document exactly as
// the server returned it. Write failures are fatal; a half-written cache
// must not be ignored silently.
func (c *Cache) Store(raw []byte) error {
	if err := os.WriteFile(c.path, raw, cacheFileMode); err != nil {
		return fmt.Errorf("failed to write snapshot cache %s: %w", c.path, err)
	}
	return nil
}
