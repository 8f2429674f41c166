package service

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
	"github.com/guttosm/bag-pricing-service/internal/metrics"
	"github.com/guttosm/bag-pricing-service/internal/service/cache"
)

const defaultShards = 16

// ShardedCache spreads results over several independent LRU shards to reduce
// lock contention. Keys are xxhash fingerprints, so the low bits pick a shard.
type ShardedCache struct {
	shards []*ttlCache
	mask   uint64
}

// NewShardedCache creates a sharded cache with the given total capacity and
// TTL. numShards is rounded up to a power of two.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = defaultShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	sc := &ShardedCache{
		shards: make([]*ttlCache, n),
		mask:   uint64(n - 1),
	}
	for i := range sc.shards {
		sc.shards[i] = newTTLCache(perShard, ttl)
	}
	return sc
}

func (sc *ShardedCache) shard(key uint64) *ttlCache {
	return sc.shards[key&sc.mask]
}

// Get retrieves a value from the owning shard.
func (sc *ShardedCache) Get(key uint64) (model.CalculationResult, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a value in the owning shard.
func (sc *ShardedCache) Set(key uint64, value model.CalculationResult) {
	sc.shard(key).Set(key, value)
}

// Invalidate removes a key from the owning shard.
func (sc *ShardedCache) Invalidate(key uint64) {
	sc.shard(key).Invalidate(key)
}

// Clear empties every shard.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop shuts down the cleanup goroutine of every shard.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics returns metrics aggregated over all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache whose entries also expire after ttl.
// It implements cache.CacheWithMetrics.
type ttlCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[uint64]*list.Element
	order    *list.List // front is most recently used
	now      func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type cacheEntry struct {
	key       uint64
	value     model.CalculationResult
	expiresAt time.Time
}

// newTTLCache creates an LRU cache with the given capacity and TTL. A
// background goroutine drops expired entries once a minute.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[uint64]*list.Element, capacity),
		order:    list.New(),
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop(time.Minute)
	return c
}

// Get returns the cached value when present and not expired.
func (c *ttlCache) Get(key uint64) (model.CalculationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.CalculationResult{}, false
	}

	entry := el.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.removeElement(el)
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return model.CalculationResult{}, false
	}

	c.order.MoveToFront(el)
	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or refreshes a value. When the cache is full the least recently
// used entry is evicted.
func (c *ttlCache) Set(key uint64, value model.CalculationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, value: value, expiresAt: expiresAt})
	if c.order.Len() > c.capacity {
		c.removeElement(c.order.Back())
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes a single key.
func (c *ttlCache) Invalidate(key uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes every entry and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[uint64]*list.Element, c.capacity)
	c.order.Init()
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	metrics.RecordCacheOperation("clear", "success")
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := c.order.Len()
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.purgeExpired()
		case <-c.stopCh:
			return
		}
	}
}

// purgeExpired walks from the least recently used end and drops expired entries.
func (c *ttlCache) purgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if current.After(el.Value.(*cacheEntry).expiresAt) {
			c.removeElement(el)
		}
		el = prev
	}
}

func (c *ttlCache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*cacheEntry).key)
}
