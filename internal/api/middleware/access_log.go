package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// AccessLog пишет строку на каждый запрос с его X-Request-ID
// Должен стоять после RequestID
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			requestID := GetRequestID(r.Context())
			if rec.status >= http.StatusInternalServerError {
				logger.Error("%s %s - status=%d duration=%s request_id=%s",
					r.Method, r.URL.Path, rec.status, duration, requestID)
				return
			}
			logger.Info("%s %s - status=%d duration=%s request_id=%s",
				r.Method, r.URL.Path, rec.status, duration, requestID)
		})
	}
}
