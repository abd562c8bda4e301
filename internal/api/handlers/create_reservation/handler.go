package create_reservation

import (
	"errors"
	"net/http"

	"github.com/fleetops/TFS-ShiftService/internal/api/handlers"
	"github.com/fleetops/TFS-ShiftService/internal/api/middleware"
	createReservation "github.com/fleetops/TFS-ShiftService/internal/usecase/create_reservation"
	"github.com/fleetops/TFS-ShiftService/pkg/metrics"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgIncompleteRequest   = "не заполнены обязательные поля запроса"
	msgInvalidInput        = "некорректный формат даты или времени"
	msgNonPositiveDuration = "конец смены должен быть позже начала"
	msgDurationTooLong     = "длительность смены не может превышать 10 часов"
	msgVehicleNotFound     = "автомобиль не найден"
	msgVehicleInactive     = "автомобиль выведен из парка"
	msgVehicleUnavailable  = "автомобиль занят в выбранные даты"
	msgMissingPrincipal    = "требуется аутентификация"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(principal))
	if err != nil {
		var conflict *createReservation.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /reservations - Vehicle unavailable: vehicle_id=%d, dates=%v", req.VehicleID, conflict.Dates)
			metrics.IncReservationConflict()
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:            msgVehicleUnavailable,
				ConflictingDates: conflict.Dates,
			})

		case errors.Is(err, createReservation.ErrIncompleteRequest):
			h.logger.Warn("POST /reservations - Incomplete request: driver_id=%d", principal.UserID)
			handlers.RespondBadRequest(w, msgIncompleteRequest)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: driver_id=%d", principal.UserID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrNonPositiveDuration):
			h.logger.Warn("POST /reservations - Non-positive duration: driver_id=%d", principal.UserID)
			handlers.RespondBadRequest(w, msgNonPositiveDuration)

		case errors.Is(err, createReservation.ErrDurationTooLong):
			h.logger.Warn("POST /reservations - Duration too long: driver_id=%d", principal.UserID)
			handlers.RespondBadRequest(w, msgDurationTooLong)

		case errors.Is(err, createReservation.ErrVehicleNotFound):
			h.logger.Warn("POST /reservations - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createReservation.ErrVehicleInactive):
			h.logger.Warn("POST /reservations - Vehicle inactive: vehicle_id=%d", req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgVehicleInactive)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: driver_id=%d, vehicle_id=%d, error=%v",
				principal.UserID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	metrics.IncReservationCreated()
	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, driver_id=%d, vehicle_id=%d",
		result.ID, principal.UserID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
