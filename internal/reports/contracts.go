package reports

import (
	"context"
	"io"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
)

// ExcelWriter абстракция над библиотекой генерации xlsx
type ExcelWriter interface {
	AddSheet(name string) error
	WriteHeader(columns []string) error
	WriteRow(row []interface{}) error
	Save(w io.Writer) error
	Close() error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Vehicle, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetConfirmedByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
