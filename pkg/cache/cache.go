package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the server-side cache layer.
// Implementations: Redis (production), in-memory (tests, cache-less deployments).
type Cache interface {
	// Get reads the value stored under key and unmarshals it into dest.
	// Returns found=false on a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
