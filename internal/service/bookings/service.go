package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

// Service жизненный цикл бронирования: подтверждение, заезд, выезд, отмена
// Все переходы статуса проходят через domain.Booking.TransitionTo
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	chargePolicy ChargePolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// Если chargePolicy == nil, используется DefaultChargePolicy
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	chargePolicy ChargePolicy,
	logger Logger,
) *Service {
	if chargePolicy == nil {
		chargePolicy = DefaultChargePolicy
	}

	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		chargePolicy: chargePolicy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований с фильтрацией по номеру, гостю и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings (limit=%d, offset=%d)", len(bookings), filter.Limit, filter.Offset)
	return models.FromDomainBookingList(bookings), nil
}

// Confirm подтверждает предварительную бронь (prebooked -> confirmed)
func (s *Service) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.transition(ctx, "Confirm", id, func(b *domain.Booking, now time.Time) error {
		return b.TransitionTo(domain.StatusConfirmed, now)
	})
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// CheckIn заселяет гостя
// Допустимо только из prebooked и confirmed; фиксирует actual_check_in
func (s *Service) CheckIn(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.transition(ctx, "CheckIn", id, func(b *domain.Booking, now time.Time) error {
		if !b.CanCheckIn() {
			return fmt.Errorf("%w: cannot check in booking in status %s", ErrInvalidTransition, b.Status)
		}
		if err := b.TransitionTo(domain.StatusCheckedIn, now); err != nil {
			return err
		}
		b.ActualCheckIn = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// CheckOut выселяет гостя из любого нетерминального статуса
// Фиксирует actual_check_out и прибавляет доначисления по ChargePolicy
func (s *Service) CheckOut(ctx context.Context, id int64) (*models.CheckOutResponse, error) {
	var charges models.CheckOutResponse

	booking, err := s.transition(ctx, "CheckOut", id, func(b *domain.Booking, now time.Time) error {
		if b.Status.IsTerminal() {
			return fmt.Errorf("%w: cannot check out booking in status %s", ErrInvalidTransition, b.Status)
		}

		extra := s.chargePolicy(b, now)
		if extra.IsNegative() {
			return fmt.Errorf("%w: charge policy returned negative amount %s", ErrInternal, extra)
		}

		if err := b.TransitionTo(domain.StatusCheckedOut, now); err != nil {
			return err
		}
		b.ActualCheckOut = &now
		b.AdditionalCharges = b.AdditionalCharges.Add(extra)
		charges.AdditionalCharges = extra
		return nil
	})
	if err != nil {
		return nil, err
	}

	charges.Booking = *models.FromDomainBooking(booking)
	return &charges, nil
}

// Cancel отменяет бронирование
// Отменить можно только prebooked и confirmed, иначе ErrCannotCancel
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.transition(ctx, "Cancel", id, func(b *domain.Booking, now time.Time) error {
		if !b.CanBeCancelled() {
			return fmt.Errorf("%w: status %s", ErrCannotCancel, b.Status)
		}
		return b.TransitionTo(domain.StatusCancelled, now)
	})
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// transition читает бронь с блокировкой, применяет apply и сохраняет результат в одной транзакции
// Если apply вернул ошибку, бронь не сохраняется
func (s *Service) transition(
	ctx context.Context,
	op string,
	id int64,
	apply func(b *domain.Booking, now time.Time) error,
) (*domain.Booking, error) {
	s.logger.Info("%s: booking id=%d", op, id)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		previous := booking.Status
		if err := apply(booking, s.timeProvider.Now()); err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
			}
			return err
		}

		if err := s.bookingRepo.Update(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		s.logger.Info("%s: booking id=%d %s -> %s", op, id, previous, booking.Status)
		result = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("%s: booking id=%d not found", op, id)
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("%s: booking id=%d rejected: %v", op, id, err)
		default:
			s.logger.Error("%s: booking id=%d failed: %v", op, id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
			}
		}
		return nil, err
	}

	return result, nil
}
