package create_reservation

import (
	"time"

	"github.com/fleetops/TFS-ShiftService/internal/identity"
	createReservation "github.com/fleetops/TFS-ShiftService/internal/usecase/create_reservation"
	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	VehicleID int64    `json:"vehicleId"`
	Dates     []string `json:"dates"`     // ["2026-09-01", ...]
	StartTime string   `json:"startTime"` // "08:00"
	EndTime   string   `json:"endTime"`   // "16:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64    `json:"id"`
	DriverID    int64    `json:"driverId"`
	DriverName  string   `json:"driverName"`
	VehicleID   int64    `json:"vehicleId"`
	PlateNumber string   `json:"plateNumber"`
	Dates       []string `json:"dates"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// ConflictResponse HTTP response model для занятых дат
type ConflictResponse struct {
	Error            string   `json:"error"`
	ConflictingDates []string `json:"conflictingDates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Идентификация водителя берется из сессии, а не из тела запроса.
func (r *CreateReservationRequest) ToUseCaseRequest(principal *identity.Principal) *createReservation.Request {
	return &createReservation.Request{
		DriverID:   principal.UserID,
		DriverName: principal.FullName,
		VehicleID:  r.VehicleID,
		Dates:      r.Dates,
		StartTime:  types.TimeString(r.StartTime),
		EndTime:    types.TimeString(r.EndTime),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		DriverID:    resp.DriverID,
		DriverName:  resp.DriverName,
		VehicleID:   resp.VehicleID,
		PlateNumber: resp.PlateNumber,
		Dates:       resp.Dates,
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
