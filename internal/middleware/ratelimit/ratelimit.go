// Package ratelimit throttles requests per client address using a fixed
// one-minute window. It guards the admin login endpoint.
package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

const window = time.Minute

// Config holds rate limiter configuration
type Config struct {
	RequestsPerMinute int
	CleanupInterval   time.Duration
}

// DefaultConfig allows ten attempts a minute per client.
func DefaultConfig() Config {
	return Config{
		RequestsPerMinute: 10,
		CleanupInterval:   5 * time.Minute,
	}
}

type clientWindow struct {
	start    time.Time
	requests int
}

// Limiter tracks request counts per client key.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	now     func() time.Time

	rejected int64

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter starts a limiter with a background sweep of idle clients.
// Call Stop to end the sweep.
func NewLimiter(cfg Config) *Limiter {
	def := DefaultConfig()
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = def.RequestsPerMinute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = def.CleanupInterval
	}

	l := &Limiter{
		clients: make(map[string]*clientWindow),
		limit:   cfg.RequestsPerMinute,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go l.sweep(cfg.CleanupInterval)
	return l
}

// Allow records a request from key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[key]
	if !ok || now.Sub(c.start) >= window {
		l.clients[key] = &clientWindow{start: now, requests: 1}
		return true
	}

	c.requests++
	if c.requests > l.limit {
		atomic.AddInt64(&l.rejected, 1)
		return false
	}
	return true
}

// retryAfter returns the seconds until key's window resets.
func (l *Limiter) retryAfter(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.clients[key]
	if !ok {
		return 0
	}
	secs := int((window - l.now().Sub(c.start) + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

func (l *Limiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) evictIdle() {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := l.now().Add(-2 * window)
	for key, c := range l.clients {
		if c.start.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}

// Stop ends the background sweep. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Metrics for monitoring rate limit performance
type Metrics struct {
	Rejected    int64 `json:"rejected"`
	ClientCount int   `json:"clientCount"`
}

func (l *Limiter) GetMetrics() Metrics {
	l.mu.Lock()
	n := len(l.clients)
	l.mu.Unlock()
	return Metrics{Rejected: atomic.LoadInt64(&l.rejected), ClientCount: n}
}

// Middleware rejects requests over the limit. keyFn identifies the client;
// onLimit writes the rejection and defaults to a plain 429.
func (l *Limiter) Middleware(keyFn func(*http.Request) string, onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			if !l.Allow(key) {
				w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter(key)))
				if onLimit != nil {
					onLimit(w, r)
					return
				}
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
