package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/talentforge/skillboard/internal/session"
	"github.com/talentforge/skillboard/pkg/metrics"
)

// MetricsMiddleware wraps HTTP handlers to record Prometheus metrics.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap the response writer to capture the status code.
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		durationMs := float64(time.Since(start).Milliseconds())
		statusCodeStr := strconv.Itoa(wrapped.statusCode)

		metrics.RecordHTTPRequest(endpoint, r.Method, statusCodeStr)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, statusCodeStr, durationMs)
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// sessionHandler is an http.HandlerFunc that additionally receives the
// resolved session of the calling principal.
type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// sessionMiddleware resolves the Authorization bearer token to a live
// session before the handler runs. No token or an unknown token stops the
// request with 401.
func sessionMiddleware(deps AuthDependencies, next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "unauthenticated", ErrMissingBearer)
			return
		}
		sess, ok := deps.Authenticate(token)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthenticated", nil)
			return
		}
		next(w, r, sess)
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
