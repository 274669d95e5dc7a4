// Package cache provides content caching for generated designs and floor
// plans.
//
// Generation is deterministic, so a design produced for a given input never
// goes stale: cache entries are keyed by a hash of the input parameters and
// can live with long TTLs. Three backends are provided:
//   - FileCache: files in a directory, for CLI usage
//   - RedisCache: shared cache for multi-instance API deployments
//   - NullCache: no-op, for tests and disabled caching
//
// Keys are built with Keyer, which hashes the input parameters so that
// equivalent inputs hit the same entry regardless of field order or
// formatting in the original request.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// the error is reserved for backend failures. A Set with ttl <= 0 stores
// the entry without expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultTTL is a reasonable entry lifetime for generated designs. Entries
// are immutable, so the TTL only bounds cache growth.
const DefaultTTL = 24 * time.Hour
