// Package urlutil builds cluster URLs from untrusted path segments.
// Snapshot and index names come from user input and server responses, so
// every joined URL is checked to be a strict extension of its base.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidTarget indicates a path segment produced a URL that escaped
// its intended base (e.g. a name containing ".." or an absolute URL).
var ErrInvalidTarget = errors.New("invalid target URL")

// BaseURL returns the cluster root URL for a host and port.
func BaseURL(host string, port int) string {
	return fmt.Sprintf("http://%s:%d/", host, port)
}

// SnapshotBaseURL returns the snapshot API base URL for a repository.
// The repository name itself is a dynamic segment and is validated.
func SnapshotBaseURL(host string, port int, repository string) (string, error) {
	base := BaseURL(host, port) + "_snapshot/"
	joined, err := Join(base, repository)
	if err != nil {
		return "", err
	}
	return joined + "/", nil
}

// Join resolves segment against base the way a browser would and returns
// the result, failing with ErrInvalidTarget unless it begins with the
// exact base string.
func Join(base, segment string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL %q: %w", base, err)
	}

	ref, err := url.Parse(segment)
	if err != nil {
		return "", fmt.Errorf("%w: cannot parse segment %q", ErrInvalidTarget, segment)
	}

	joined := baseURL.ResolveReference(ref).String()
	if !strings.HasPrefix(joined, base) {
		return "", fmt.Errorf("%w: segment %q escapes base %q", ErrInvalidTarget, segment, base)
	}

	return joined, nil
}
