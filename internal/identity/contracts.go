package identity

import (
	"context"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
)

// DriverRepository интерфейс репозитория учетных записей
type DriverRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Driver, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
