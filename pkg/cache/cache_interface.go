package cache

import (
	"context"
	"time"
)

// Cache is the contract of the cache layer. Implementations: Redis, no-op.
type Cache interface {
	// Get unmarshals a cached value into dest.
	// On a miss found is false and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}

// NoopCache is used when Redis is unreachable: every Get misses.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (NoopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (NoopCache) Ping(ctx context.Context) error { return nil }
