// Package cache stores rendered board artifacts.
//
// A [Cache] maps string keys to byte slices with an optional time-to-live.
// Keys are built with [ArtifactKey] from the hash of a board snapshot and the
// output format, so a cached SVG stays valid for exactly as long as the
// layout it was drawn from. Layouts themselves are never cached.
//
// Three backends are provided:
//
//   - [FileCache] keeps entries under a local directory (CLI use)
//   - [RedisCache] shares entries between server replicas
//   - [NullCache] stores nothing (--no-cache and tests)
//
// Every backend reports hits, misses and writes through
// [observability.Cache].
package cache

import (
	"context"
	"strings"
	"time"
)

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 24 * time.Hour

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the stored value for key. A miss is reported with
	// hit == false and a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// keyType returns the namespace part of a key ("artifact" for
// "artifact:ab12..."), used to label cache events.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}
