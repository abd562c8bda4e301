package manage_drivers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fleetops/TFS-ShiftService/internal/api/handlers"
	"github.com/fleetops/TFS-ShiftService/internal/service/drivers"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDriverID     = "некорректный ID водителя"
	msgInvalidEmail        = "некорректный email"
	msgInvalidPassword     = "пароль должен быть не короче 8 символов"
	msgInvalidEmployeeType = "некорректный тип занятости"
	msgEmptyFullName       = "не указано имя водителя"
	msgDuplicateEmail      = "пользователь с таким email уже существует"
	msgNotFound            = "водитель не найден"
)

// CreateDriverRequest HTTP request model
type CreateDriverRequest struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	EmployeeType string `json:"employeeType"`
	Password     string `json:"password"`
}

// UpdateDriverRequest HTTP request model
type UpdateDriverRequest struct {
	FullName     string `json:"fullName"`
	EmployeeType string `json:"employeeType"`
}

type Handler struct {
	service DriverService
	logger  Logger
}

func NewHandler(service DriverService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/drivers
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /drivers - Failed to list drivers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleCreate POST /api/v1/drivers
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateDriverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drivers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), drivers.CreateDriverRequest{
		Email:        req.Email,
		FullName:     req.FullName,
		EmployeeType: req.EmployeeType,
		Password:     req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, drivers.ErrInvalidEmail):
			h.logger.Warn("POST /drivers - Invalid email: %q", req.Email)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, drivers.ErrInvalidPassword):
			h.logger.Warn("POST /drivers - Password too short for email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidPassword)

		case errors.Is(err, drivers.ErrInvalidEmployeeType):
			h.logger.Warn("POST /drivers - Invalid employee type: %q", req.EmployeeType)
			handlers.RespondBadRequest(w, msgInvalidEmployeeType)

		case errors.Is(err, drivers.ErrEmptyFullName):
			h.logger.Warn("POST /drivers - Empty full name for email=%s", req.Email)
			handlers.RespondBadRequest(w, msgEmptyFullName)

		case errors.Is(err, drivers.ErrDuplicateEmail):
			h.logger.Warn("POST /drivers - Duplicate email: %s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)

		default:
			h.logger.Error("POST /drivers - Failed to create driver: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drivers - Driver created: driver_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleUpdate PUT /api/v1/drivers/{driverId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	driverID, err := strconv.ParseInt(vars["driverId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /drivers/{id} - Invalid driver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDriverID)
		return
	}

	var req UpdateDriverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drivers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), driverID, req.FullName, req.EmployeeType)
	if err != nil {
		switch {
		case errors.Is(err, drivers.ErrDriverNotFound):
			h.logger.Warn("PUT /drivers/{id} - Driver not found: driver_id=%d", driverID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drivers.ErrEmptyFullName):
			h.logger.Warn("PUT /drivers/{id} - Empty full name: driver_id=%d", driverID)
			handlers.RespondBadRequest(w, msgEmptyFullName)

		case errors.Is(err, drivers.ErrInvalidEmployeeType):
			h.logger.Warn("PUT /drivers/{id} - Invalid employee type: %q", req.EmployeeType)
			handlers.RespondBadRequest(w, msgInvalidEmployeeType)

		default:
			h.logger.Error("PUT /drivers/{id} - Failed to update driver: driver_id=%d, error=%v", driverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /drivers/{id} - Driver updated: driver_id=%d", driverID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// HandleDelete DELETE /api/v1/drivers/{driverId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	driverID, err := strconv.ParseInt(vars["driverId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /drivers/{id} - Invalid driver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDriverID)
		return
	}

	if err := h.service.Delete(r.Context(), driverID); err != nil {
		if errors.Is(err, drivers.ErrDriverNotFound) {
			h.logger.Warn("DELETE /drivers/{id} - Driver not found: driver_id=%d", driverID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /drivers/{id} - Failed to delete driver: driver_id=%d, error=%v", driverID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /drivers/{id} - Driver deleted: driver_id=%d", driverID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
