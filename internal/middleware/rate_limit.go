package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
	"github.com/guttosm/bag-pricing-service/internal/i18n"
	"github.com/guttosm/bag-pricing-service/internal/metrics"
)

const defaultNumShards = 16

// Client kinds used as rate limit key prefixes and metric labels.
const (
	clientKindUser = "user"
	clientKindIP   = "ip"
)

// fixedWindow counts the requests of one client since start.
type fixedWindow struct {
	start time.Time
	used  int
}

type limiterShard struct {
	mu      sync.Mutex
	windows map[string]*fixedWindow
}

// ShardedRateLimiter is a fixed-window limiter keyed by authenticated
// subject, or by client IP for anonymous callers. Clients are spread over
// shards hashed with xxhash so unrelated clients rarely share a lock.
type ShardedRateLimiter struct {
	shards []*limiterShard
	limit  int
	window time.Duration
	now    func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(limit, window, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter with a custom shard count.
func NewShardedRateLimiter(limit int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if window <= 0 {
		window = time.Minute
	}

	rl := &ShardedRateLimiter{
		shards: make([]*limiterShard, numShards),
		limit:  limit,
		window: window,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{windows: make(map[string]*fixedWindow)}
	}

	go rl.evictLoop()
	return rl
}

func (rl *ShardedRateLimiter) shard(key string) *limiterShard {
	return rl.shards[xxhash.Sum64String(key)%uint64(len(rl.shards))]
}

// take consumes one request of key. It reports whether the request is
// allowed, how many remain and when the current window ends.
func (rl *ShardedRateLimiter) take(key string) (allowed bool, remaining int, reset time.Time) {
	s := rl.shard(key)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= rl.window {
		w = &fixedWindow{start: now}
		s.windows[key] = w
	}
	reset = w.start.Add(rl.window)

	if w.used >= rl.limit {
		return false, 0, reset
	}
	w.used++
	return true, rl.limit - w.used, reset
}

// UserRateLimit returns a middleware limiting requests per authenticated
// subject. Anonymous requests are limited per client IP.
func (rl *ShardedRateLimiter) UserRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, key := clientKey(c)
		allowed, remaining, reset := rl.take(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			metrics.RecordRateLimited(kind)
			retryAfter := int(math.Ceil(reset.Sub(rl.now()).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			msg := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, msg).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func clientKey(c *gin.Context) (kind, key string) {
	if subject := GetSubject(c); subject != "" {
		return clientKindUser, clientKindUser + ":" + subject
	}
	return clientKindIP, clientKindIP + ":" + c.ClientIP()
}

func (rl *ShardedRateLimiter) evictLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// evictExpired drops windows that ended before the current one began.
func (rl *ShardedRateLimiter) evictExpired() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for key, w := range s.windows {
			if now.Sub(w.start) >= 2*rl.window {
				delete(s.windows, key)
			}
		}
		s.mu.Unlock()
	}
}

// Stop terminates the eviction goroutine. It is safe to call twice.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Clients returns the number of tracked clients.
func (rl *ShardedRateLimiter) Clients() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.windows)
		s.mu.Unlock()
	}
	return total
}
