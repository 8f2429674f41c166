package middleware

import (
	"sync"
	"time"
)

// idempotencyCache stores replayable responses keyed by request fingerprint.
type idempotencyCache struct {
	mu       sync.RWMutex
	items    map[uint64]*cachedResponse
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items:  make(map[uint64]*cachedResponse),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

func (c *idempotencyCache) Get(key uint64) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || c.now().Sub(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

func (c *idempotencyCache) Set(key uint64, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = c.now()
	c.items[key] = resp
}

func (c *idempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop ends the cleanup goroutine.
func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *idempotencyCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
