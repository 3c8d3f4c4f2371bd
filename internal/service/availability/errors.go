package availability

import "errors"

var (
	// ErrInvalidRange возвращается, когда конец диапазона не позже начала
	ErrInvalidRange = errors.New("availability: range end must be after start")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
