package reservations

import (
	"context"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByDriverID(ctx context.Context, driverID int64) ([]*domain.Reservation, error)
	GetConfirmedByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
