package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is an in-memory Cache used to exercise the read policy
// without a Redis instance.
type memoryCache struct {
	mu      sync.Mutex
	data    map[string]string
	getErr  error
	setErr  error
	deletes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	val, ok := m.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return val, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value.(string)
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	m.deletes++
	return nil
}

func TestReadThrough_MissThenHit(t *testing.T) {
	cache := newMemoryCache()
	rt := NewReadThrough(cache)
	ctx := context.Background()

	computes := 0
	compute := func(ctx context.Context) (string, error) {
		computes++
		return "3", nil
	}

	// First call: empty cache, compute exactly once.
	val, fromCache, err := rt.GetString(ctx, "om:album:a1:likes", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, "3", val)
	assert.False(t, fromCache)
	assert.Equal(t, 1, computes)

	// Second call: identical value from cache, compute not invoked again.
	val, fromCache, err = rt.GetString(ctx, "om:album:a1:likes", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, "3", val)
	assert.True(t, fromCache)
	assert.Equal(t, 1, computes)
}

func TestReadThrough_InvalidateForcesRecompute(t *testing.T) {
	cache := newMemoryCache()
	rt := NewReadThrough(cache)
	ctx := context.Background()

	computes := 0
	compute := func(ctx context.Context) (string, error) {
		computes++
		return "v", nil
	}

	_, _, err := rt.GetString(ctx, "k", time.Minute, compute)
	require.NoError(t, err)
	require.NoError(t, rt.Invalidate(ctx, "k"))
	rt.Forget("k")

	_, fromCache, err := rt.GetString(ctx, "k", time.Minute, compute)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 2, computes)
}

func TestReadThrough_InvalidateAbsentKeyIsNoop(t *testing.T) {
	cache := newMemoryCache()
	rt := NewReadThrough(cache)

	assert.NoError(t, rt.Invalidate(context.Background(), "never-set"))
	assert.NoError(t, rt.Invalidate(context.Background()))
}

func TestReadThrough_ComputeErrorPropagates(t *testing.T) {
	cache := newMemoryCache()
	rt := NewReadThrough(cache)

	wantErr := errors.New("store unavailable")
	_, fromCache, err := rt.GetString(context.Background(), "k", time.Minute, func(ctx context.Context) (string, error) {
		return "", wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.False(t, fromCache)

	// Nothing must be cached after a failed compute.
	_, ok := cache.data["k"]
	assert.False(t, ok)
}

func TestReadThrough_BackendFailureFallsThrough(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	rt := NewReadThrough(cache)

	val, fromCache, err := rt.GetString(context.Background(), "k", time.Minute, func(ctx context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", val)
	assert.False(t, fromCache)

	// A backend failure is not a miss: the value must not be repopulated.
	assert.Empty(t, cache.data)
}

func TestReadThrough_SetFailureDoesNotFailRead(t *testing.T) {
	cache := newMemoryCache()
	cache.setErr = errors.New("write timeout")
	rt := NewReadThrough(cache)

	val, fromCache, err := rt.GetString(context.Background(), "k", time.Minute, func(ctx context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", val)
	assert.False(t, fromCache)
}

func TestReadThrough_ConcurrentMissesCollapse(t *testing.T) {
	cache := newMemoryCache()
	rt := NewReadThrough(cache)

	var mu sync.Mutex
	computes := 0
	release := make(chan struct{})
	compute := func(ctx context.Context) (string, error) {
		mu.Lock()
		computes++
		mu.Unlock()
		<-release
		return "v", nil
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			val, _, err := rt.GetString(context.Background(), "k", time.Minute, compute)
			require.NoError(t, err)
			results[i] = val
		}(i)
	}

	// Give the goroutines time to pile onto the same flight.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	mu.Lock()
	assert.Equal(t, 1, computes)
	mu.Unlock()
	for _, val := range results {
		assert.Equal(t, "v", val)
	}
}
