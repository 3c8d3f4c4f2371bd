package domain

import "errors"

var (
	// ErrInvalidTransition недопустимый переход статуса бронирования
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrUnknownStatus неизвестный статус бронирования
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownPaymentStatus неизвестный статус оплаты
	ErrUnknownPaymentStatus = errors.New("domain: unknown payment status")

	// ErrInvalidDateRange дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("domain: check-out must be after check-in")
)
