package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrRoomOverlap возвращается, когда вставка нарушила ограничение на пересечение броней номера
	ErrRoomOverlap = errors.New("booking.repository: room already booked for overlapping dates")

	// ErrReferenceNotFound возвращается, когда номер или гость из брони не существует
	ErrReferenceNotFound = errors.New("booking.repository: referenced room or customer not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
