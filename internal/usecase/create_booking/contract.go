package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// CustomerRepository интерфейс репозитория гостей
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityChecker проверка занятости номера на полуинтервал [start, end)
type AvailabilityChecker interface {
	IsRoomOccupied(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
