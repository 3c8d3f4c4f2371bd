package rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, limit, offset uint64) ([]*domain.Room, error)
}

// AvailabilityChecker проверка занятости номера
type AvailabilityChecker interface {
	IsRoomOccupied(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
