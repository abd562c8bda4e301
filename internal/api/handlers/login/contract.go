package login

import (
	"context"

	"github.com/fleetops/TFS-ShiftService/internal/identity"
)

// IdentityService интерфейс сервиса аутентификации
type IdentityService interface {
	Authenticate(ctx context.Context, email, password string) (*identity.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
