package check_availability

import (
	"context"
	"errors"
	"net/http"

	"github.com/fleetops/TFS-ShiftService/internal/api/handlers"
	checkAvailability "github.com/fleetops/TFS-ShiftService/internal/usecase/check_availability"
	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgIncompleteRequest  = "не заполнены обязательные поля запроса"
	msgInvalidInput       = "некорректный формат даты или времени"
	msgVehicleNotFound    = "автомобиль не найден"
)

// CheckAvailabilityUseCase интерфейс use case проверки доступности
type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	VehicleID int64    `json:"vehicleId"`
	Dates     []string `json:"dates"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VehicleID        int64    `json:"vehicleId"`
	Available        bool     `json:"available"`
	ConflictingDates []string `json:"conflictingDates"`
}

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		VehicleID: req.VehicleID,
		Dates:     req.Dates,
		StartTime: types.TimeString(req.StartTime),
		EndTime:   types.TimeString(req.EndTime),
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrIncompleteRequest):
			h.logger.Warn("POST /reservations/check - Incomplete request")
			handlers.RespondBadRequest(w, msgIncompleteRequest)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /reservations/check - Invalid input")
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkAvailability.ErrVehicleNotFound):
			h.logger.Warn("POST /reservations/check - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("POST /reservations/check - Failed to check availability: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	conflicts := result.ConflictingDates
	if conflicts == nil {
		conflicts = []string{}
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		VehicleID:        result.VehicleID,
		Available:        result.Available,
		ConflictingDates: conflicts,
	})
}
