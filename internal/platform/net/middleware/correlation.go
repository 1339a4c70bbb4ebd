package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"gitpulse/internal/platform/logger"
)

// CorrelationHeader carries the correlation id on requests and responses
const CorrelationHeader = "X-Correlation-ID"

// Correlation propagates an inbound correlation id, or mints one, so every
// log line and downstream effect of the request shares it. The id is echoed
// on the response for client-side tracing.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(CorrelationHeader, id)
		ctx := logger.WithCorrelation(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
