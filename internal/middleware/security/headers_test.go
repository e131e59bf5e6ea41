package security

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	h := Headers(DefaultHeadersConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	t.Run("plain http", func(t *testing.T) {
		req := require.New(t)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		req.Equal("nosniff", w.Header().Get("X-Content-Type-Options"))
		req.Equal("DENY", w.Header().Get("X-Frame-Options"))
		req.Contains(w.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
		req.Empty(w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("tls adds hsts", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.TLS = &tls.ConnectionState{}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		require.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("empty values are skipped", func(t *testing.T) {
		w := httptest.NewRecorder()
		Headers(HeadersConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Empty(t, w.Header())
	})
}

func TestCacheHeaders(t *testing.T) {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	w := httptest.NewRecorder()
	StaticAssets(3600)(noop).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	require.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))

	w = httptest.NewRecorder()
	NoStore(noop).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil))
	require.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
