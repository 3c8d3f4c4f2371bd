package users

import "errors"

var (
	// ErrUserExists возвращается, если имя пользователя уже занято
	ErrUserExists = errors.New("username already registered")

	// ErrInvalidCredentials возвращается при неверной паре логин/пароль
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInactiveUser возвращается для заблокированного пользователя
	ErrInactiveUser = errors.New("inactive user")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
