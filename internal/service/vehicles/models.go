package vehicles

import (
	"time"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
)

// VehicleResponse DTO автомобиля для внешнего API
type VehicleResponse struct {
	ID          int64     `json:"id"`
	PlateNumber string    `json:"plateNumber"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VehicleListResponse DTO списка автомобилей
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
}

func fromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}
	return &VehicleResponse{
		ID:          v.ID,
		PlateNumber: v.PlateNumber,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func fromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	resp := &VehicleListResponse{
		Vehicles: make([]VehicleResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		if converted := fromDomainVehicle(v); converted != nil {
			resp.Vehicles = append(resp.Vehicles, *converted)
		}
	}
	resp.Total = len(resp.Vehicles)
	return resp
}
