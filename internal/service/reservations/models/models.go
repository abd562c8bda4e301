package models

import (
	"time"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
)

// ReservationResponse ответ с данными бронирования смены
type ReservationResponse struct {
	ID          int64    `json:"id"`
	DriverID    int64    `json:"driverId"`
	DriverName  string   `json:"driverName"`
	VehicleID   int64    `json:"vehicleId"`
	PlateNumber string   `json:"plateNumber"`
	Dates       []string `json:"dates"`     // "2024-06-10"
	StartTime   string   `json:"startTime"` // "08:00"
	EndTime     string   `json:"endTime"`   // "16:00"
	Status      string   `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:          r.ID,
		DriverID:    r.DriverID,
		DriverName:  r.DriverName,
		VehicleID:   r.VehicleID,
		PlateNumber: r.PlateNumber,
		Dates:       r.Dates,
		StartTime:   r.StartTime.String(),
		EndTime:     r.EndTime.String(),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if converted := FromDomainReservation(r); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}
