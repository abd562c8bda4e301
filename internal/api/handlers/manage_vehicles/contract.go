package manage_vehicles

import (
	"context"

	"github.com/fleetops/TFS-ShiftService/internal/service/vehicles"
)

// VehicleService интерфейс сервиса автомобилей
type VehicleService interface {
	List(ctx context.Context, onlyActive bool) (*vehicles.VehicleListResponse, error)
	Create(ctx context.Context, plateNumber string) (*vehicles.VehicleResponse, error)
	Update(ctx context.Context, id int64, plateNumber string, isActive bool) (*vehicles.VehicleResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
