package service

import (
	"sync"
	"testing"
	"time"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
	"github.com/guttosm/bag-pricing-service/internal/service/cache"
	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func result(price float64) model.CalculationResult {
	return model.CalculationResult{FinalPrice: price}
}

func newTestCache(capacity int, ttl time.Duration) (*ttlCache, *fakeClock) {
	clock := newFakeClock()
	c := newTTLCache(capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(*ttlCache, *fakeClock)
		key           uint64
		expectedValue model.CalculationResult
		expectedFound bool
	}{
		{
			name: "returns value when present",
			setup: func(c *ttlCache, _ *fakeClock) {
				c.Set(100, result(2.13))
			},
			key:           100,
			expectedValue: result(2.13),
			expectedFound: true,
		},
		{
			name:          "misses unknown key",
			setup:         func(*ttlCache, *fakeClock) {},
			key:           999,
			expectedFound: false,
		},
		{
			name: "misses expired entry",
			setup: func(c *ttlCache, clock *fakeClock) {
				c.Set(100, result(2.13))
				clock.Advance(2 * time.Minute)
			},
			key:           100,
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache(10, time.Minute)
			defer c.Stop()
			tt.setup(c, clock)

			value, found := c.Get(tt.key)
			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)
	defer c.Stop()

	c.Set(1, result(1))
	c.Set(2, result(2))
	_, _ = c.Get(1)
	c.Set(3, result(3))

	_, ok := c.Get(2)
	assert.False(t, ok, "2 was least recently used")
	_, ok = c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_UpdateExistingEntry(t *testing.T) {
	c, clock := newTestCache(2, time.Minute)
	defer c.Stop()

	c.Set(1, result(1))
	clock.Advance(50 * time.Second)
	c.Set(1, result(1.5))
	clock.Advance(50 * time.Second)

	value, ok := c.Get(1)
	assert.True(t, ok, "update refreshes the TTL")
	assert.Equal(t, result(1.5), value)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c, _ := newTestCache(10, time.Minute)
	defer c.Stop()

	c.Set(1, result(1))
	c.Set(2, result(2))
	c.Invalidate(1)
	c.Invalidate(42)

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Metrics().Size)

	c.Clear()
	assert.Equal(t, cache.Metrics{Capacity: 10}, c.Metrics())
}

func TestTTLCache_PurgeExpired(t *testing.T) {
	c, clock := newTestCache(10, time.Minute)
	defer c.Stop()

	c.Set(1, result(1))
	clock.Advance(30 * time.Second)
	c.Set(2, result(2))
	clock.Advance(45 * time.Second)

	c.purgeExpired()

	assert.Equal(t, 1, c.Metrics().Size)
	_, ok := c.Get(2)
	assert.True(t, ok)
}

func TestTTLCache_Metrics(t *testing.T) {
	c, _ := newTestCache(10, time.Minute)
	defer c.Stop()

	c.Set(1, result(1))
	_, _ = c.Get(1)
	_, _ = c.Get(1)
	_, _ = c.Get(2)

	m := c.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
	assert.Equal(t, 10, m.Capacity)
}

func TestTTLCache_StopTwice(t *testing.T) {
	c := newTTLCache(1, time.Minute)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}

func TestTTLCache_ImplementsInterface(t *testing.T) {
	var _ cache.CacheWithMetrics = (*ttlCache)(nil)
	var _ cache.CacheWithMetrics = (*ShardedCache)(nil)
}

func TestTTLCache_Concurrency(t *testing.T) {
	c := newTTLCache(100, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(key uint64) {
			defer wg.Done()
			c.Set(key, result(float64(key)))
			_, _ = c.Get(key)
			c.Invalidate(key + 1)
		}(uint64(i))
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Metrics().Size, 100)
}

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name           string
		capacity       int
		shards         int
		expectedShards int
		expectedCap    int
	}{
		{"power of two", 64, 4, 4, 64},
		{"rounds up", 64, 5, 8, 64},
		{"default shards", 160, 0, 16, 160},
		{"at least one per shard", 2, 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewShardedCache(tt.capacity, time.Minute, tt.shards)
			defer sc.Stop()

			assert.Len(t, sc.shards, tt.expectedShards)
			assert.Equal(t, tt.expectedCap, sc.Metrics().Capacity)
		})
	}
}

func TestShardedCache_Operations(t *testing.T) {
	sc := NewShardedCache(64, time.Minute, 4)
	defer sc.Stop()

	for key := uint64(0); key < 16; key++ {
		sc.Set(key, result(float64(key)))
	}
	for key := uint64(0); key < 16; key++ {
		value, ok := sc.Get(key)
		assert.True(t, ok)
		assert.Equal(t, float64(key), value.FinalPrice)
	}

	for i, s := range sc.shards {
		assert.Equal(t, 4, s.Metrics().Size, "shard %d", i)
	}

	sc.Invalidate(3)
	_, ok := sc.Get(3)
	assert.False(t, ok)

	sc.Clear()
	assert.Zero(t, sc.Metrics().Size)
}
