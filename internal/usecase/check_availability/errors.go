package check_availability

import "errors"

var (
	// ErrIncompleteRequest возвращается, когда в запросе отсутствуют обязательные поля
	ErrIncompleteRequest = errors.New("check_availability: incomplete request")

	// ErrInvalidInput возвращается при некорректных значениях полей
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("check_availability: vehicle not found")

	// ErrRetrieval возвращается, когда чтение из хранилища завершилось ошибкой
	ErrRetrieval = errors.New("check_availability: failed to read reservations")
)
