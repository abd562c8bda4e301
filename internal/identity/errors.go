package identity

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	// Наружу не различаем "нет такого пользователя" и "неверный пароль".
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound возвращается, когда токен сессии не найден или истек
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("identity service: internal error")
)
