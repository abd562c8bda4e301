package identity

import (
	"time"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
)

// Principal аутентифицированный пользователь, восстановленный из сессии
type Principal struct {
	UserID   int64       `json:"userId"`
	FullName string      `json:"fullName"`
	Role     domain.Role `json:"role"`
}

// Session сессия пользователя, хранится в Redis под ключом "session:<token>"
type Session struct {
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
	CreatedAt time.Time `json:"createdAt"`
}
