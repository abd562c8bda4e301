package drivers

import (
	"time"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
)

// CreateDriverRequest параметры создания учетной записи водителя
type CreateDriverRequest struct {
	Email        string
	FullName     string
	EmployeeType string
	Password     string
}

// DriverResponse DTO учетной записи для внешнего API.
// Хеш пароля наружу не отдается.
type DriverResponse struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`
	EmployeeType string    `json:"employeeType"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DriverListResponse DTO списка учетных записей
type DriverListResponse struct {
	Drivers []DriverResponse `json:"drivers"`
	Total   int              `json:"total"`
}

func fromDomainDriver(d *domain.Driver) *DriverResponse {
	if d == nil {
		return nil
	}
	return &DriverResponse{
		ID:           d.ID,
		Email:        d.Email,
		FullName:     d.FullName,
		Role:         string(d.Role),
		EmployeeType: d.EmployeeType,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func fromDomainDriverList(drivers []*domain.Driver) *DriverListResponse {
	resp := &DriverListResponse{
		Drivers: make([]DriverResponse, 0, len(drivers)),
	}
	for _, d := range drivers {
		if converted := fromDomainDriver(d); converted != nil {
			resp.Drivers = append(resp.Drivers, *converted)
		}
	}
	resp.Total = len(resp.Drivers)
	return resp
}
