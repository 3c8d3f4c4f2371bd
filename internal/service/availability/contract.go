package availability

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindByRoomWithStatus(ctx context.Context, roomID int64, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
