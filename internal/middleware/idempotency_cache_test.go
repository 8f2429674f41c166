package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestIdempotencyCache(t *testing.T, ttl time.Duration, now *time.Time) *idempotencyCache {
	t.Helper()
	c := newIdempotencyCache(ttl)
	c.now = func() time.Time { return *now }
	t.Cleanup(c.Stop)
	return c
}

func TestIdempotencyCache_Get(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		elapsed       time.Duration
		key           uint64
		expectedFound bool
	}{
		{"fresh entry found", time.Second, 123, true},
		{"unknown key", time.Second, 999, false},
		{"expired entry", 2 * time.Minute, 123, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := start
			cache := newTestIdempotencyCache(t, time.Minute, &now)
			cache.Set(123, &cachedResponse{StatusCode: 200, Body: []byte(`{}`)})

			now = now.Add(tt.elapsed)
			resp, found := cache.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if found {
				assert.Equal(t, 200, resp.StatusCode)
			}
		})
	}
}

func TestIdempotencyCache_Cleanup(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	cache := newTestIdempotencyCache(t, time.Minute, &now)

	cache.Set(1, &cachedResponse{StatusCode: 200})
	now = now.Add(50 * time.Second)
	cache.Set(2, &cachedResponse{StatusCode: 200})
	now = now.Add(20 * time.Second)

	cache.cleanup()

	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get(2)
	assert.True(t, ok)
}

func TestIdempotencyCache_StopTwice(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)
	cache.Stop()
	assert.NotPanics(t, cache.Stop)
}
