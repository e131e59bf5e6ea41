package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int) (*Limiter, *time.Time) {
	t.Helper()
	l := NewLimiter(Config{RequestsPerMinute: limit, CleanupInterval: time.Hour})
	t.Cleanup(l.Stop)
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiter_Allow(t *testing.T) {
	req := require.New(t)
	l, now := newTestLimiter(t, 2)

	req.True(l.Allow("a"))
	req.True(l.Allow("a"))
	req.False(l.Allow("a"))
	req.True(l.Allow("b"), "clients are tracked separately")

	*now = now.Add(window)
	req.True(l.Allow("a"), "window resets after a minute")
	req.Equal(int64(1), l.GetMetrics().Rejected)
}

func TestLimiter_EvictIdle(t *testing.T) {
	l, now := newTestLimiter(t, 5)
	l.Allow("a")
	*now = now.Add(3 * window)
	l.Allow("b")
	l.evictIdle()
	require.Equal(t, 1, l.GetMetrics().ClientCount)
}

func TestLimiter_Middleware(t *testing.T) {
	req := require.New(t)
	l, now := newTestLimiter(t, 1)
	h := l.Middleware(func(r *http.Request) string { return "k" }, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	req.Equal(http.StatusNoContent, w.Code)

	*now = now.Add(20 * time.Second)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	req.Equal(http.StatusTooManyRequests, w.Code)
	req.Equal("40", w.Header().Get("Retry-After"))
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	l := NewLimiter(Config{})
	l.Stop()
	l.Stop()
	require.Equal(t, DefaultConfig().RequestsPerMinute, l.limit)
}
