package manage_drivers

import (
	"context"

	"github.com/fleetops/TFS-ShiftService/internal/service/drivers"
)

// DriverService интерфейс сервиса учетных записей водителей
type DriverService interface {
	List(ctx context.Context) (*drivers.DriverListResponse, error)
	Create(ctx context.Context, req drivers.CreateDriverRequest) (*drivers.DriverResponse, error)
	Update(ctx context.Context, id int64, fullName, employeeType string) (*drivers.DriverResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
