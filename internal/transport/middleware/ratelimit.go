package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter applies a per-client token bucket. Clients are keyed by
// remote IP; idle buckets are evicted by a background goroutine.
type RateLimiter struct {
	buckets sync.Map // clientKey -> *tokenBucket
	stop    chan struct{}
}

type tokenBucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	refilled time.Time
}

// NewRateLimiter starts the eviction goroutine with the given sweep
// interval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.evictIdle(cleanupInterval)
	return rl
}

// Stop terminates the eviction goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware allowing at most maxPerMinute requests per
// client IP. Rejected requests get 429 with a Retry-After hint.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucketFor(clientKey(r), maxPerMinute)
			if !b.take() {
				retryAfter := 60.0/float64(maxPerMinute) + 1
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *tokenBucket {
	capacity := float64(maxPerMinute)
	val, _ := rl.buckets.LoadOrStore(key, &tokenBucket{
		tokens:   capacity,
		capacity: capacity,
		perSec:   capacity / 60.0,
		refilled: time.Now(),
	})
	return val.(*tokenBucket)
}

// take refills proportionally to elapsed time, then spends one token
// if available.
func (b *tokenBucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.refilled).Seconds()*b.perSec)
	b.refilled = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) evictIdle(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*tokenBucket)
				b.mu.Lock()
				idle := b.refilled.Before(cutoff)
				b.mu.Unlock()
				if idle {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
