// Package snapshot holds the snapshot listing types and the cache-backed
// retrieval pipeline used by the restore and delete commands.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrMalformedResponse indicates a listing document without the expected
// "snapshots" collection field, or one that is not valid JSON at all.
var ErrMalformedResponse = errors.New("malformed snapshot listing")

// Snapshot represents a single Elasticsearch snapshot as returned by the
// snapshot API.
type Snapshot struct {
	Snapshot         string   `json:"snapshot"`
	UUID             string   `json:"uuid"`
	State            string   `json:"state"`
	StartTime        string   `json:"start_time"`
	StartTimeMillis  int64    `json:"start_time_in_millis"`
	EndTime          string   `json:"end_time"`
	EndTimeMillis    int64    `json:"end_time_in_millis"`
	DurationInMillis int64    `json:"duration_in_millis"`
	Indices          []string `json:"indices"`
	Failures         []string `json:"failures"`
}

// Listing is the full unfiltered snapshot listing for a repository.
type Listing struct {
	Snapshots []Snapshot `json:"snapshots"`
}

// Set maps snapshot names to their records. Iteration order is
// deliberately unspecified.
type Set map[string]Snapshot

// ParseListing decodes a snapshot listing document. The "snapshots" field
// must be present; a response without it is malformed regardless of what
// else it contains.
func ParseListing(data []byte) (*Listing, error) {
	var probe struct {
		Snapshots *[]Snapshot `json:"snapshots"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if probe.Snapshots == nil {
		return nil, fmt.Errorf("%w: missing snapshots field", ErrMalformedResponse)
	}
	return &Listing{Snapshots: *probe.Snapshots}, nil
}

// Filter returns the snapshots whose names match the shell-glob pattern,
// keyed by name. An empty result is not an error.
func Filter(listing *Listing, pattern string) Set {
	set := make(Set)
	for _, snap := range listing.Snapshots {
		if matchName(pattern, snap.Snapshot) {
			set[snap.Snapshot] = snap
		}
	}
	return set
}

// matchName matches a snapshot name against a shell-glob pattern with
// fnmatch semantics: *, ?, [seq] and [!seq]. Malformed patterns match
// nothing.
func matchName(pattern, name string) bool {
	ok, err := path.Match(strings.ReplaceAll(pattern, "[!", "[^"), name)
	return err == nil && ok
}
