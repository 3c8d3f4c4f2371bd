package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	// HeaderRequestID заголовок с идентификатором запроса
	HeaderRequestID = "X-Request-ID"

	requestIDKey contextKey = "request_id"
)

// RequestID пробрасывает X-Request-ID или генерирует новый
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// GetRequestID извлекает ID запроса из контекста
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
