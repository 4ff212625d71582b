package redis

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is the minimal key-value surface the read policy needs. *Client
// satisfies it; tests substitute an in-memory implementation.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// ReadThrough serves derived reads from cache when available, else computes
// them from the source of truth and populates the cache. Concurrent misses
// for the same key are collapsed into a single compute call.
//
// Results carry a cache-origin flag so the boundary layer can surface cache
// hits (e.g. via a response header). The flag has no correctness weight.
type ReadThrough struct {
	cache Cache
	sf    singleflight.Group
}

// NewReadThrough creates a read-through policy over the given cache.
func NewReadThrough(cache Cache) *ReadThrough {
	return &ReadThrough{cache: cache}
}

// GetString attempts a cache lookup by key. On hit it returns the cached
// value with fromCache=true without touching the source. On miss it invokes
// compute, stores the result under key with the given TTL and returns it
// with fromCache=false.
//
// A miss is an expected branch, never an error. A genuine cache-backend
// failure also falls through to compute, but skips repopulation so a broken
// cache cannot take reads down with it.
func (r *ReadThrough) GetString(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (string, error)) (string, bool, error) {
	val, err := r.cache.Get(ctx, key)
	if err == nil {
		return val, true, nil
	}
	populate := err == ErrKeyNotFound

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		data, err := compute(ctx)
		if err != nil {
			return "", err
		}
		if populate {
			// Population is best-effort: the computed value is already in
			// hand and the store remains the source of truth.
			_ = r.cache.Set(ctx, key, data, ttl)
		}
		return data, nil
	})
	if err != nil {
		return "", false, err
	}

	return result.(string), false, nil
}

// Invalidate unconditionally deletes the given keys from the cache.
// Deleting an absent key is a no-op, never an error.
func (r *ReadThrough) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.cache.Delete(ctx, keys...)
}

// Forget tells singleflight to forget a key so that a subsequent miss runs
// compute again instead of joining an in-flight call.
func (r *ReadThrough) Forget(key string) {
	r.sf.Forget(key)
}
