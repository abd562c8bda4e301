package get_vehicle_reservations

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fleetops/TFS-ShiftService/internal/api/handlers"
	"github.com/fleetops/TFS-ShiftService/internal/service/reservations/models"
)

const msgInvalidVehicleID = "некорректный ID автомобиля"

// ReservationService интерфейс сервиса бронирований
type ReservationService interface {
	GetVehicleReservations(ctx context.Context, vehicleID int64) (*models.ReservationListResponse, error)
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

// Handle GET /api/v1/vehicles/{vehicleId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/reservations - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	list, err := h.service.GetVehicleReservations(r.Context(), vehicleID)
	if err != nil {
		h.logger.Error("GET /vehicles/{id}/reservations - Failed to get reservations: vehicle_id=%d, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
