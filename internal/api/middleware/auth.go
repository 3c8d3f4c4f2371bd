package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	userRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/user"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
	msgUserRevoked  = "пользователь не найден или отключен"
)

// Auth проверяет заголовок Authorization: Bearer <token>, загружает владельца токена
// и кладет ID и имя пользователя в контекст.
// Токен удаленного или отключенного пользователя отклоняется до истечения срока.
func Auth(validator TokenValidator, users UserProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.Warn("Auth: %s %s - token rejected: %v", r.Method, r.URL.Path, err)
				w.Header().Set("WWW-Authenticate", "Bearer")
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			user, err := users.GetByUsername(r.Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					logger.Warn("Auth: %s %s - unknown user %q", r.Method, r.URL.Path, claims.Subject)
					w.Header().Set("WWW-Authenticate", "Bearer")
					handlers.RespondUnauthorized(w, msgUserRevoked)
					return
				}
				logger.Error("Auth: %s %s - failed to load user %q: %v", r.Method, r.URL.Path, claims.Subject, err)
				handlers.RespondInternalError(w)
				return
			}

			// отключен или пересоздан под тем же именем
			if !user.IsActive || user.ID != claims.UserID {
				logger.Warn("Auth: %s %s - user id=%d rejected: active=%t, token user_id=%d",
					r.Method, r.URL.Path, user.ID, user.IsActive, claims.UserID)
				w.Header().Set("WWW-Authenticate", "Bearer")
				handlers.RespondUnauthorized(w, msgUserRevoked)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, user.ID)
			ctx = context.WithValue(ctx, usernameKey, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUsername извлекает имя пользователя из контекста
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
