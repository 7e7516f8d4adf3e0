package ratelimiter

import (
	"sync"
	"time"
)

// Limiter decides whether an operation identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

type window struct {
	count     int
	lastReset time.Time
}

// RateLimiter is a fixed-window limiter keyed by caller (e.g. client IP).
type RateLimiter struct {
	limit    int           // max calls per interval and key
	interval time.Duration // window length

	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing limit calls per interval for each key.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allow counts one call for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		rl.windows[key] = &window{count: 1, lastReset: now}
		rl.sweep(now)
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// sweep drops windows that have already expired so idle keys do not accumulate.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}
