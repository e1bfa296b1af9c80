// Package cache holds the key-value store behind the public read cache and the
// double-submit guard, plus the bus that fans cache invalidations out to
// server instances and browsers.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is a minimal TTL key-value store. Implementations: MemoryStore, RedisStore.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetNX stores value only if key is absent and reports whether it did.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	// Replace overwrites an existing key keeping its remaining TTL.
	Replace(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) (int64, error)
}
