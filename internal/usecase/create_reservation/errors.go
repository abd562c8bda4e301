package create_reservation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncompleteRequest возвращается, когда в запросе отсутствуют обязательные поля
	ErrIncompleteRequest = errors.New("create_reservation: incomplete request")

	// ErrInvalidInput возвращается при некорректных значениях полей (формат даты/времени)
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrNonPositiveDuration возвращается, когда конец смены не позже начала
	ErrNonPositiveDuration = errors.New("create_reservation: shift duration must be positive")

	// ErrDurationTooLong возвращается, когда длительность смены превышает 10 часов
	ErrDurationTooLong = errors.New("create_reservation: shift duration exceeds 10 hours")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_reservation: vehicle not found")

	// ErrVehicleInactive возвращается, когда автомобиль выведен из парка
	ErrVehicleInactive = errors.New("create_reservation: vehicle is not active")

	// ErrVehicleUnavailable возвращается, когда автомобиль уже занят в запрошенные даты
	ErrVehicleUnavailable = errors.New("create_reservation: vehicle is not available")

	// ErrRetrieval возвращается, когда чтение из хранилища завершилось ошибкой
	ErrRetrieval = errors.New("create_reservation: failed to read reservations")

	// ErrPersistence возвращается, когда запись в хранилище завершилась ошибкой
	ErrPersistence = errors.New("create_reservation: failed to persist reservation")
)

// ConflictError несет список дат, на которые автомобиль уже занят.
// Порядок дат совпадает с порядком в запросе.
// errors.Is(err, ErrVehicleUnavailable) остается рабочим через Unwrap.
type ConflictError struct {
	Dates []string
}

// Error возвращает сообщение со списком конфликтных дат.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v on: %s", ErrVehicleUnavailable, strings.Join(e.Dates, ", "))
}

// Unwrap связывает ConflictError с сентинелом ErrVehicleUnavailable.
func (e *ConflictError) Unwrap() error {
	return ErrVehicleUnavailable
}
