package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Booking бронирование номера
type Booking struct {
	ID         int64
	RoomID     int64
	CustomerID int64

	// Плановые даты (календарные, без времени)
	ScheduledCheckIn  time.Time
	ScheduledCheckOut time.Time

	// Фактические заезд/выезд, заполняются только переходами статуса
	ActualCheckIn  *time.Time
	ActualCheckOut *time.Time

	Status        BookingStatus
	PaymentStatus PaymentStatus

	TotalAmount       decimal.Decimal
	AmountPaid        decimal.Decimal
	AdditionalCharges decimal.Decimal

	Notes *string

	BookingDate time.Time // время создания
	UpdatedAt   time.Time
}

// Range плановый диапазон проживания
func (b *Booking) Range() DateRange {
	return DateRange{Start: DateOnly(b.ScheduledCheckIn), End: DateOnly(b.ScheduledCheckOut)}
}

// IsBlocking занимает ли бронь номер
func (b *Booking) IsBlocking() bool {
	return b.Status.IsBlocking()
}

// CanBeCancelled отменить можно только prebooked и confirmed
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPrebooked || b.Status == StatusConfirmed
}

// CanCheckIn заселить можно только prebooked и confirmed
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusPrebooked || b.Status == StatusConfirmed
}

// TransitionTo переводит бронь в статус next и обновляет updated_at
// При недопустимом переходе поля не изменяются
func (b *Booking) TransitionTo(next BookingStatus, now time.Time) error {
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}
	b.Status = next
	b.UpdatedAt = now
	return nil
}

// BookingsFilter фильтр списка бронирований
type BookingsFilter struct {
	RoomID     *int64
	CustomerID *int64
	Status     *BookingStatus
	Limit      uint64
	Offset     uint64
}
