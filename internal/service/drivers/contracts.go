package drivers

import (
	"context"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
)

// DriverRepository интерфейс репозитория учетных записей водителей
type DriverRepository interface {
	Create(ctx context.Context, d *domain.Driver) (*domain.Driver, error)
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Driver, error)
	Update(ctx context.Context, id int64, fullName, employeeType string) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
