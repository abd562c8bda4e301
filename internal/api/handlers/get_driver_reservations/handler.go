package get_driver_reservations

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fleetops/TFS-ShiftService/internal/api/handlers"
	"github.com/fleetops/TFS-ShiftService/internal/api/middleware"
	"github.com/fleetops/TFS-ShiftService/internal/domain"
	"github.com/fleetops/TFS-ShiftService/internal/service/reservations"
	"github.com/fleetops/TFS-ShiftService/internal/service/reservations/models"
)

const (
	msgInvalidDriverID  = "некорректный ID водителя"
	msgForbidden        = "доступ запрещен"
	msgMissingPrincipal = "требуется аутентификация"
)

// ReservationService интерфейс сервиса бронирований
type ReservationService interface {
	GetDriverReservations(ctx context.Context, driverID int64, actorID int64, actorRole domain.Role) (*models.ReservationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/drivers/{driverId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	driverID, err := strconv.ParseInt(vars["driverId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /drivers/{id}/reservations - Invalid driver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDriverID)
		return
	}

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /drivers/{id}/reservations - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	list, err := h.service.GetDriverReservations(r.Context(), driverID, principal.UserID, principal.Role)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /drivers/{id}/reservations - Access denied: driver_id=%d, user_id=%d", driverID, principal.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /drivers/{id}/reservations - Failed to get reservations: driver_id=%d, error=%v", driverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
