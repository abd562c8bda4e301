package domain

import (
	"time"

	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

// ReservationStatus represents the status of a shift reservation
type ReservationStatus string

const (
	// StatusConfirmed is the only status a reservation ever carries.
	// Cancellation removes the record instead of transitioning it.
	StatusConfirmed ReservationStatus = "confirmed"
)

// Reservation represents a driver's claim on a vehicle for a time-of-day
// interval across one or more calendar dates. The same [StartTime, EndTime)
// window applies independently to every date in Dates.
type Reservation struct {
	ID        int64
	DriverID  int64
	VehicleID int64

	// Denormalized display data, resolved at creation time
	DriverName  string
	PlateNumber string

	Dates     []string // "2006-01-02", non-empty, no duplicates
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the reservation counts against availability.
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// CoversDate returns true if the reservation's date set contains date.
func (r *Reservation) CoversDate(date string) bool {
	for _, d := range r.Dates {
		if d == date {
			return true
		}
	}
	return false
}

// OverlapsInterval reports whether the reservation's daily window conflicts
// with [start, end) under the closed-start/open-end rule: intervals that only
// touch at an endpoint (back-to-back shifts) do not conflict.
func (r *Reservation) OverlapsInterval(start, end types.TimeString) bool {
	return r.StartTime.IsBefore(end) && r.EndTime.IsAfter(start)
}
