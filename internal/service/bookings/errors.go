package bookings

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition возвращается, когда операция недопустима в текущем статусе брони
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = fmt.Errorf("%w: booking cannot be cancelled", ErrInvalidTransition)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
