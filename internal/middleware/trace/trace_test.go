package trace

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"festival/internal/log"
)

func TestMiddleware_AssignsRequestID(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	logger := log.New(log.Config{Output: &buf, Format: "json", Component: "test"})
	m := NewMiddleware(logger, func(*http.Request) string { return "10.0.0.1" })

	var seen string
	h := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		log.FromContext(r.Context()).InfoContext(r.Context(), "inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/donors?name=x", nil))

	req.NotEmpty(seen)
	req.Equal(seen, w.Header().Get(HeaderRequestID))
	req.Equal(http.StatusTeapot, w.Code)
	req.Contains(buf.String(), `"msg":"inside handler"`)
	req.Equal(2, strings.Count(buf.String(), `"request_id":"`+seen+`"`))
	req.Contains(buf.String(), `"level":"WARN","msg":"HTTP request completed"`)
	req.Equal(int64(1), m.GetMetrics().TotalRequests)
}

func TestMiddleware_ReusesValidIncomingID(t *testing.T) {
	m := NewMiddleware(log.Discard(), nil)
	h := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for _, tc := range []struct {
		incoming string
		reused   bool
	}{
		{"abc-123", true},
		{"bad id with spaces", false},
		{strings.Repeat("a", 65), false},
	} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(HeaderRequestID, tc.incoming)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		require.Equal(t, tc.reused, w.Header().Get(HeaderRequestID) == tc.incoming, tc.incoming)
	}
}
