package manage_vehicles

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fleetops/TFS-ShiftService/internal/api/handlers"
	"github.com/fleetops/TFS-ShiftService/internal/api/middleware"
	"github.com/fleetops/TFS-ShiftService/internal/domain"
	"github.com/fleetops/TFS-ShiftService/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidPlate       = "некорректный формат госномера, ожидается \"XX-XX 000\""
	msgDuplicatePlate     = "автомобиль с таким госномером уже зарегистрирован"
	msgNotFound           = "автомобиль не найден"
)

// VehicleRequest HTTP request model для создания и обновления
type VehicleRequest struct {
	PlateNumber string `json:"plateNumber"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/vehicles
// Водители видят только активные автомобили, администраторы видят весь парк.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyActive := true
	if principal, ok := middleware.GetPrincipal(r.Context()); ok && principal.Role == domain.RoleAdmin {
		onlyActive = false
	}

	list, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleCreate POST /api/v1/vehicles
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req VehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.PlateNumber)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidPlateNumber):
			h.logger.Warn("POST /vehicles - Invalid plate number: %q", req.PlateNumber)
			handlers.RespondBadRequest(w, msgInvalidPlate)

		case errors.Is(err, vehicles.ErrDuplicatePlate):
			h.logger.Warn("POST /vehicles - Duplicate plate number: %s", req.PlateNumber)
			handlers.RespondError(w, http.StatusConflict, msgDuplicatePlate)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: vehicle_id=%d, plate=%s", created.ID, created.PlateNumber)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleUpdate PUT /api/v1/vehicles/{vehicleId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req VehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	updated, err := h.service.Update(r.Context(), vehicleID, req.PlateNumber, isActive)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("PUT /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrInvalidPlateNumber):
			h.logger.Warn("PUT /vehicles/{id} - Invalid plate number: %q", req.PlateNumber)
			handlers.RespondBadRequest(w, msgInvalidPlate)

		case errors.Is(err, vehicles.ErrDuplicatePlate):
			h.logger.Warn("PUT /vehicles/{id} - Duplicate plate number: %s", req.PlateNumber)
			handlers.RespondError(w, http.StatusConflict, msgDuplicatePlate)

		default:
			h.logger.Error("PUT /vehicles/{id} - Failed to update vehicle: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /vehicles/{id} - Vehicle updated: vehicle_id=%d", vehicleID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// HandleDelete DELETE /api/v1/vehicles/{vehicleId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	if err := h.service.Delete(r.Context(), vehicleID); err != nil {
		if errors.Is(err, vehicles.ErrVehicleNotFound) {
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /vehicles/{id} - Failed to delete vehicle: vehicle_id=%d, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /vehicles/{id} - Vehicle deleted: vehicle_id=%d", vehicleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
