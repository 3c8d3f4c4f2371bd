package domain

import "fmt"

// BookingStatus статус бронирования (закрытый набор значений)
type BookingStatus string

const (
	StatusPrebooked  BookingStatus = "prebooked"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// validTransitions допустимые переходы между статусами
// Терминальные статусы (checked_out, cancelled) переходов не имеют
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPrebooked:  {StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCheckedOut, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

// ParseBookingStatus разбирает статус из строки
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// IsValid проверяет, что статус входит в закрытый набор
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// IsTerminal true для статусов из TerminalStatuses
func (s BookingStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// IsBlocking true, если бронь в этом статусе занимает номер
func (s BookingStatus) IsBlocking() bool {
	for _, b := range BlockingStatuses {
		if s == b {
			return true
		}
	}
	return false
}

// CanTransitionTo проверяет допустимость перехода s -> next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsInitial статусы, с которыми бронь может быть создана
func (s BookingStatus) IsInitial() bool {
	return s == StatusPrebooked || s == StatusConfirmed
}

func (s BookingStatus) String() string {
	return string(s)
}

// PaymentStatus статус оплаты
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefunded      PaymentStatus = "refunded"
)

// ParsePaymentStatus разбирает статус оплаты из строки
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch p := PaymentStatus(s); p {
	case PaymentPending, PaymentPartiallyPaid, PaymentPaid, PaymentRefunded:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentStatus, s)
	}
}
