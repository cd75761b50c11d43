// Package elasticsearch provides the cluster client used for snapshot
// listing, snapshot restore, and index deletion.
package elasticsearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/logger"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/urlutil"
)

// Client wraps the Elasticsearch API for a single repository. Snapshot and
// index names are validated against the intended base URL before any
// request leaves the process.
type Client struct {
	es           *elasticsearch.Client
	repository   string
	baseURL      string
	snapshotBase string
	log          *logger.Logger
}

// NewClient creates a client for the cluster at host:port, scoped to the
// given snapshot repository. The repository name is validated as a URL
// segment here so a hostile value fails before any request is made.
func NewClient(host string, port int, repository string, log *logger.Logger) (*Client, error) {
	baseURL := urlutil.BaseURL(host, port)

	snapshotBase, err := urlutil.SnapshotBaseURL(host, port, repository)
	if err != nil {
		return nil, err
	}

	cfg := elasticsearch.Config{
		Addresses: []string{strings.TrimSuffix(baseURL, "/")},
	}

	es, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Client{
		es:           es,
		repository:   repository,
		baseURL:      baseURL,
		snapshotBase: snapshotBase,
		log:          log,
	}, nil
}

// ListSnapshotsRaw retrieves the full snapshot listing for the repository
// and returns the raw response document, so callers can persist it
// verbatim before decoding.
func (c *Client) ListSnapshotsRaw(ctx context.Context) ([]byte, error) {
	target, err := urlutil.Join(c.snapshotBase, "_all")
	if err != nil {
		return nil, err
	}
	c.log.Debugf("Listing snapshots from %s", target)

	res, err := c.es.Snapshot.Get(
		c.repository,
		[]string{"_all"},
		c.es.Snapshot.Get.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch returned error: %s", res.String())
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return raw, nil
}

// RestoreSnapshot restores one snapshot, asking the server to hold the
// connection until the restore finishes. A 500 response is assumed to mean
// the indices are already restored and a 503 that another restore is in
// progress; both are logged and treated as success. Any other non-2xx
// status is an error.
func (c *Client) RestoreSnapshot(ctx context.Context, snapshotName string) error {
	target, err := urlutil.Join(c.snapshotBase, snapshotName)
	if err != nil {
		return err
	}
	c.log.Debugf("Restore URL: %s/_restore", target)

	c.log.Infof("Sending restore request, will wait for completion...")
	res, err := c.es.Snapshot.Restore(
		c.repository,
		snapshotName,
		c.es.Snapshot.Restore.WithContext(ctx),
		c.es.Snapshot.Restore.WithWaitForCompletion(true),
	)
	if err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusInternalServerError:
		c.log.Infof("Restore returned 500, indices may already be restored")
		return nil
	case res.StatusCode == http.StatusServiceUnavailable:
		c.log.Infof("Restore returned 503, another restore may be in progress...")
		return nil
	case res.IsError():
		return fmt.Errorf("elasticsearch returned error: %s", res.String())
	}

	c.log.Infof("Restore request complete")
	return nil
}

// DeleteIndex deletes one index. A 404 means the index is already gone and
// is treated as success; any other non-2xx status is an error.
func (c *Client) DeleteIndex(ctx context.Context, indexName string) error {
	target, err := urlutil.Join(c.baseURL, indexName)
	if err != nil {
		return err
	}
	c.log.Debugf("Deleting URL %s", target)

	c.log.Infof("Requesting index %s delete", indexName)
	res, err := c.es.Indices.Delete(
		[]string{indexName},
		c.es.Indices.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		c.log.Infof("Index not found - skipping")
		return nil
	}

	if res.IsError() {
		return fmt.Errorf("elasticsearch returned error: %s", res.String())
	}

	c.log.Infof("Delete request complete")
	return nil
}
