package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrCustomerNotFound возвращается, когда гость не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrRoomUnavailable возвращается, когда номер занят на запрошенные даты
	ErrRoomUnavailable = errors.New("create_booking: room is not available for the requested dates")

	// ErrConflict возвращается, когда конкурентная запись не дала завершить транзакцию даже после повтора
	ErrConflict = errors.New("create_booking: concurrent booking conflict")

	// ErrInvalidDate возвращается, когда дата заезда в прошлом или выезд не позже заезда
	ErrInvalidDate = errors.New("create_booking: invalid stay dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
