package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/customer"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	roomRepo     RoomRepository
	customerRepo CustomerRepository
	bookingRepo  BookingRepository
	availability AvailabilityChecker
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	customerRepo CustomerRepository,
	bookingRepo BookingRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		availability: availability,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, customer=%d, check_in=%s, check_out=%s",
		req.RoomID, req.CustomerID,
		req.ScheduledCheckIn.Format(domain.DateFormat), req.ScheduledCheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных (до любых обращений к БД)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	stay, err := validateStay(req.ScheduledCheckIn, req.ScheduledCheckOut, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	bookingStatus, err := resolveBookingStatus(req.BookingStatus)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid booking status: %v", err)
		return nil, err
	}

	paymentStatus, err := resolvePaymentStatus(req.PaymentStatus, req.TotalAmount, req.AmountPaid)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid payment status: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверки и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Номер (строка блокируется до конца транзакции)
		if _, err := uc.roomRepo.GetByID(txCtx, req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		// 2.2. Гость
		if _, err := uc.customerRepo.GetByID(txCtx, req.CustomerID); err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
				return ErrCustomerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
			return fmt.Errorf("%w: failed to get customer: %w", ErrInternal, err)
		}

		// 2.3. Доступность номера на [check_in, check_out)
		occupied, err := uc.availability.IsRoomOccupied(txCtx, req.RoomID, stay.Start, stay.End)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check availability of room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}
		if occupied {
			uc.logger.Warn("CreateBooking: room id=%d is occupied for %s", req.RoomID, stay)
			return ErrRoomUnavailable
		}

		// 2.4. Сохраняем бронирование
		booking := &domain.Booking{
			RoomID:            req.RoomID,
			CustomerID:        req.CustomerID,
			ScheduledCheckIn:  stay.Start,
			ScheduledCheckOut: stay.End,
			Status:            bookingStatus,
			PaymentStatus:     paymentStatus,
			TotalAmount:       req.TotalAmount,
			AmountPaid:        req.AmountPaid,
			AdditionalCharges: decimal.Zero,
			Notes:             req.Notes,
			BookingDate:       now,
			UpdatedAt:         now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrRoomOverlap) {
				uc.logger.Warn("CreateBooking: room id=%d rejected by overlap constraint for %s", req.RoomID, stay)
				return ErrRoomUnavailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization conflict for room id=%d after retry", req.RoomID)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, room=%d, status=%s",
		result.ID, result.RoomID, result.Status)

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:                b.ID,
		RoomID:            b.RoomID,
		CustomerID:        b.CustomerID,
		ScheduledCheckIn:  b.ScheduledCheckIn,
		ScheduledCheckOut: b.ScheduledCheckOut,
		BookingStatus:     string(b.Status),
		PaymentStatus:     string(b.PaymentStatus),
		TotalAmount:       b.TotalAmount,
		AmountPaid:        b.AmountPaid,
		AdditionalCharges: b.AdditionalCharges,
		Notes:             b.Notes,
		BookingDate:       b.BookingDate,
		UpdatedAt:         b.UpdatedAt,
	}
}
