package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Service проверка занятости номера на диапазон дат
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// IsRoomOccupied true, если у номера есть бронь в блокирующем статусе,
// пересекающаяся с полуинтервалом [start, end)
// Только чтение. Вызванный внутри транзакции, блокирует найденные брони.
func (s *Service) IsRoomOccupied(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	requested, err := domain.NewDateRange(start, end)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	bookings, err := s.bookingRepo.FindByRoomWithStatus(ctx, roomID, domain.BlockingStatuses)
	if err != nil {
		s.logger.Error("IsRoomOccupied: failed to get bookings for room=%d: %v", roomID, err)
		return false, fmt.Errorf("%w: IsRoomOccupied - repository error: %w", ErrInternal, err)
	}

	if conflict := FindOverlapping(bookings, requested); conflict != nil {
		s.logger.Info("IsRoomOccupied: room=%d range=%s overlaps booking id=%d %s",
			roomID, requested, conflict.ID, conflict.Range())
		return true, nil
	}

	return false, nil
}

// FindOverlapping возвращает первую блокирующую бронь, пересекающую requested, или nil
func FindOverlapping(bookings []*domain.Booking, requested domain.DateRange) *domain.Booking {
	for _, booking := range bookings {
		if !booking.IsBlocking() {
			continue
		}
		if booking.Range().Overlaps(requested) {
			return booking
		}
	}
	return nil
}
