package domain

import "time"

// Vehicle represents a taxi in the fleet
type Vehicle struct {
	ID          int64
	PlateNumber string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBookable returns true if drivers may reserve shifts on this vehicle.
func (v *Vehicle) IsBookable() bool {
	return v.IsActive
}
