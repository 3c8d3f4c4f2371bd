package middleware

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/jwt"
)

// TokenValidator проверка access токена
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// UserProvider загрузка владельца токена
type UserProvider interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
