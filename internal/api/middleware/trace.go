package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/socialmedia-api/internal/api/shared"
	"github.com/phrazzld/socialmedia-api/internal/platform/logger"
)

// TraceIDHeader is the response header carrying the request's trace ID.
const TraceIDHeader = "X-Trace-ID"

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context, echoes it in the X-Trace-ID header and stores a logger tagged with
// it. It should be applied early so later handlers see both.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
