// Package cache provides artifact caching for rendered diagrams.
//
// Rendering through Graphviz is the only expensive step of the pipeline,
// so the CLI caches rendered artifacts keyed by a content hash of the
// input relation plus the render options. The cache is a plain key/value
// store; use [ArtifactKey] to build keys.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default lifetime of a cached artifact.
// Rendered output only changes when the renderer changes, so entries can
// live for a while.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the cached data for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
