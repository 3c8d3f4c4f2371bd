package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда гость не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
