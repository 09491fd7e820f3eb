// Package cache provides the memoization backends used by the catalog client.
//
// Every catalog operation is memoized keyed by its arguments. The backends
// here all speak the same byte-oriented interface so the client does not care
// whether results live in a process-local map, in Redis, or nowhere at all:
//
//   - [MemoryCache]: in-process map, the default. Unbounded, no invalidation.
//   - [NullCache]: never stores anything; disables memoization.
//   - [RedisCache]: shared backend for multi-instance deployments.
//
// Values are JSON-marshaled by the caller; the cache stores opaque bytes.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface implemented by all memoization backends.
//
// Get returns (data, true, nil) on a hit, (nil, false, nil) on a miss,
// and a non-nil error only for backend failures. An expired entry is a miss.
//
// Set stores data under key. A ttl of 0 means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
