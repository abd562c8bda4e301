package drivers

import "errors"

var (
	// ErrDriverNotFound возвращается, когда учетная запись не найдена
	ErrDriverNotFound = errors.New("driver not found")

	// ErrInvalidEmail возвращается, когда email пустой или некорректный
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPassword возвращается, когда пароль короче минимальной длины
	ErrInvalidPassword = errors.New("password too short")

	// ErrInvalidEmployeeType возвращается при неизвестном типе занятости
	ErrInvalidEmployeeType = errors.New("invalid employee type")

	// ErrEmptyFullName возвращается, когда не указано имя водителя
	ErrEmptyFullName = errors.New("full name is required")

	// ErrDuplicateEmail возвращается, когда email уже зарегистрирован
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drivers service: internal error")
)
