package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ScheduledCheckIn.IsZero() || req.ScheduledCheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	if !req.TotalAmount.IsPositive() {
		return fmt.Errorf("%w: totalAmount must be positive", ErrInvalidInput)
	}

	if req.AmountPaid.IsNegative() {
		return fmt.Errorf("%w: amountPaid must not be negative", ErrInvalidInput)
	}

	if req.AmountPaid.GreaterThan(req.TotalAmount) {
		return fmt.Errorf("%w: amountPaid must not exceed totalAmount", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStay проверяет даты проживания: выезд позже заезда, заезд не в прошлом
func validateStay(checkIn, checkOut, now time.Time) (domain.DateRange, error) {
	stay, err := domain.NewDateRange(checkIn, checkOut)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if stay.Start.Before(domain.DateOnly(now)) {
		return domain.DateRange{}, fmt.Errorf("%w: check-in %s is in the past",
			ErrInvalidDate, stay.Start.Format(domain.DateFormat))
	}

	return stay, nil
}

// resolveBookingStatus начальный статус брони, по умолчанию prebooked
func resolveBookingStatus(raw string) (domain.BookingStatus, error) {
	if raw == "" {
		return domain.StatusPrebooked, nil
	}

	status, err := domain.ParseBookingStatus(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !status.IsInitial() {
		return "", fmt.Errorf("%w: booking cannot be created with status %s", ErrInvalidInput, status)
	}

	return status, nil
}

// resolvePaymentStatus статус оплаты; если не указан, вычисляется по внесённой сумме
func resolvePaymentStatus(raw string, total, paid decimal.Decimal) (domain.PaymentStatus, error) {
	if raw != "" {
		status, err := domain.ParsePaymentStatus(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return status, nil
	}

	switch {
	case paid.IsZero():
		return domain.PaymentPending, nil
	case paid.LessThan(total):
		return domain.PaymentPartiallyPaid, nil
	default:
		return domain.PaymentPaid, nil
	}
}
