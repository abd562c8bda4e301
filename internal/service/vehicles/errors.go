package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidPlateNumber возвращается, когда номерной знак не соответствует формату
	ErrInvalidPlateNumber = errors.New("invalid plate number format")

	// ErrDuplicatePlate возвращается, когда номерной знак уже зарегистрирован
	ErrDuplicatePlate = errors.New("plate number already registered")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("vehicles service: internal error")
)
