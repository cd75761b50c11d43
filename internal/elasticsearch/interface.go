package elasticsearch

import "context"

// Interface defines the contract for cluster operations.
// This interface allows for easy mocking in tests.
type Interface interface {
	// ListSnapshotsRaw returns the raw snapshot listing document for the
	// configured repository.
	ListSnapshotsRaw(ctx context.Context) ([]byte, error)

	// RestoreSnapshot restores one snapshot, blocking until the server
	// reports completion.
	RestoreSnapshot(ctx context.Context, snapshotName string) error

	// DeleteIndex deletes one index.
	DeleteIndex(ctx context.Context, indexName string) error
}

// Ensure *Client implements Interface
var _ Interface = (*Client)(nil)
