package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mgconde/todolist-api/internal/api/shared"
	"github.com/mgconde/todolist-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context, along with a
// trace-scoped logger that every subsequent handler, response helper, and
// service call pulls via logger.FromContext. It should sit early in the
// middleware chain so every log line of the request carries the ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		log := slog.Default().With(slog.String("trace_id", shared.GetTraceID(ctx)))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
