package logout

import (
	"context"
	"net/http"

	"github.com/fleetops/TFS-ShiftService/internal/api/handlers"
	"github.com/fleetops/TFS-ShiftService/internal/api/middleware"
)

// IdentityService интерфейс сервиса аутентификации
type IdentityService interface {
	Logout(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	identityService IdentityService
	logger          Logger
}

func NewHandler(identityService IdentityService, logger Logger) *Handler {
	return &Handler{
		identityService: identityService,
		logger:          logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.SessionTokenHeader)

	if err := h.identityService.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Session invalidated")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
