package middleware

import (
	"net/http"
	"time"

	"organ-match/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog deja una línea por request con status y duración.
// Va después de chimw.RequestID para poder loguear el request_id.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			}
			if claims, ok := GetClaims(r.Context()); ok {
				fields["profile_id"] = claims.UserID
			}

			switch {
			case status >= 500:
				log.Error("http request", fields)
			case status >= 400:
				log.Warn("http request", fields)
			default:
				log.Debug("http request", fields)
			}
		})
	}
}
