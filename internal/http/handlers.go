package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"festival/internal/core"
	"festival/internal/log"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handleReady pings the store and reports request counters.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if s.deps.Store != nil {
		if err := s.deps.Store.Ping(ctx); err != nil {
			log.FromContext(r.Context()).LogError(r.Context(), "Readiness check failed", err,
				log.ComponentStorage, log.OpRead, nil)
			ErrorResponse(http.StatusServiceUnavailable, "Store unavailable").Write(w)
			return
		}
	}

	NewJSONResponse().Data(map[string]any{
		"status":    "ready",
		"requests":  s.tracer.GetMetrics(),
		"loginRate": s.loginLimiter.GetMetrics(),
	}).Write(w)
}

func handleAPIRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"message":"Backend running"}` + "\n"))
}

// writeServiceError maps a service error onto the response: validation
// failures are 400, missing records 404 with notFoundMsg, and everything
// else a logged 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, operation string) {
	if verr, ok := core.IsValidation(err); ok {
		BadRequestError(verr.Message).Write(w)
		return
	}
	if errors.Is(err, core.ErrNotFound) {
		NotFoundError(notFoundMsg).Write(w)
		return
	}
	log.FromContext(r.Context()).LogError(r.Context(), "Request failed", err,
		log.ComponentHTTP, operation, log.NewFields().WithHTTPRequest(r.Method, r.URL.Path, r.URL.RawQuery, r.UserAgent()))
	InternalServerError().Write(w)
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
