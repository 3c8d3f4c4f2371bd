package users

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, limit, offset uint64) ([]*domain.User, error)
}

// TokenIssuer выпуск access токенов
type TokenIssuer interface {
	GenerateToken(userID int64, username string) (string, error)
	TTL() time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
