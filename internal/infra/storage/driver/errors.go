package driver

import "errors"

var (
	// ErrDriverNotFound возвращается, когда учетная запись не найдена
	ErrDriverNotFound = errors.New("driver.repository: driver not found")

	// ErrDuplicateEmail возвращается при попытке сохранить уже занятый email
	ErrDuplicateEmail = errors.New("driver.repository: email already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("driver.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("driver.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("driver.repository: failed to scan row")
)
