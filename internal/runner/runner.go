// Package runner drives the interactive restore/delete loop over a set of
// matched snapshots.
package runner

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/elasticsearch"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/logger"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/snapshot"
)

// ErrProtectedIndex indicates an attempt to delete an index name reserved
// for internal cluster use. The request is refused before any network call.
var ErrProtectedIndex = errors.New("protected index")

// Mode selects what an affirmative answer does for a snapshot.
type Mode int

const (
	// ModeRestore restores the snapshot into the cluster.
	ModeRestore Mode = iota
	// ModeDelete deletes the indices the snapshot covers.
	ModeDelete
)

// Verb returns the prompt label for the mode.
func (m Mode) Verb() string {
	if m == ModeDelete {
		return "Delete"
	}
	return "Restore"
}

// Runner executes restore and delete actions with per-snapshot
// confirmation.
type Runner struct {
	client    elasticsearch.Interface
	fetcher   *snapshot.Fetcher
	confirm   Confirmer
	protected []string
	log       *logger.Logger
}

// New creates a runner. Protected lists the index names that must never be
// deleted regardless of snapshot contents.
func New(client elasticsearch.Interface, fetcher *snapshot.Fetcher, confirm Confirmer, protected []string, log *logger.Logger) *Runner {
	return &Runner{
		client:    client,
		fetcher:   fetcher,
		confirm:   confirm,
		protected: protected,
		log:       log,
	}
}

// Run walks the snapshot set in its natural order, asking before each
// action. A declined prompt moves on to the next snapshot; a failed action
// aborts the whole run. Actions already completed are not rolled back.
func (r *Runner) Run(ctx context.Context, set snapshot.Set, mode Mode) error {
	for name := range set {
		confirmed, err := r.confirm.Confirm(fmt.Sprintf("%s %s? (y/n): ", mode.Verb(), name))
		if err != nil {
			return err
		}
		if !confirmed {
			continue
		}

		if mode == ModeDelete {
			err = r.DeleteSnapshotIndices(ctx, name)
		} else {
			err = r.client.RestoreSnapshot(ctx, name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteSnapshotIndices deletes every index covered by the named snapshot.
// The index list comes from a fresh unfiltered fetch rather than the set
// the prompt loop iterates, so the listing is as current as the cache
// allows.
func (r *Runner) DeleteSnapshotIndices(ctx context.Context, snapshotName string) error {
	all, err := r.fetcher.Fetch(ctx, "*", false)
	if err != nil {
		return err
	}

	snap, ok := all[snapshotName]
	if !ok {
		return fmt.Errorf("snapshot %s not present in listing", snapshotName)
	}

	for _, index := range snap.Indices {
		if err := r.DeleteIndex(ctx, index); err != nil {
			return err
		}
	}
	return nil
}

// DeleteIndex deletes one index, refusing protected names outright.
func (r *Runner) DeleteIndex(ctx context.Context, indexName string) error {
	if slices.Contains(r.protected, indexName) {
		return fmt.Errorf("%w: refusing to delete %s", ErrProtectedIndex, indexName)
	}
	return r.client.DeleteIndex(ctx, indexName)
}
