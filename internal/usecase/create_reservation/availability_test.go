package create_reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

func confirmed(dates []string, start, end types.TimeString) *domain.Reservation {
	return &domain.Reservation{
		VehicleID: 1,
		Dates:     dates,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

func TestFindConflictingDates_OverlapRule(t *testing.T) {
	existing := []*domain.Reservation{
		confirmed([]string{"2024-06-10"}, "08:00", "12:00"),
	}

	tests := []struct {
		name       string
		start, end types.TimeString
		conflicts  bool
	}{
		{name: "BackToBackAfter", start: "12:00", end: "16:00", conflicts: false},
		{name: "BackToBackBefore", start: "04:00", end: "08:00", conflicts: false},
		{name: "PartialOverlap", start: "11:00", end: "13:00", conflicts: true},
		{name: "ContainedWithin", start: "09:00", end: "10:00", conflicts: true},
		{name: "Containing", start: "07:00", end: "13:00", conflicts: true},
		{name: "Identical", start: "08:00", end: "12:00", conflicts: true},
		{name: "OneMinuteIntoStart", start: "07:00", end: "08:01", conflicts: true},
		{name: "DisjointAfter", start: "13:00", end: "17:00", conflicts: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findConflictingDates([]string{"2024-06-10"}, tt.start, tt.end, existing)
			if tt.conflicts {
				assert.Equal(t, []string{"2024-06-10"}, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFindConflictingDates_IndependentDates(t *testing.T) {
	// Занят только 2024-06-10; запрос на две даты должен вернуть ровно её
	existing := []*domain.Reservation{
		confirmed([]string{"2024-06-10"}, "08:00", "12:00"),
	}

	got := findConflictingDates([]string{"2024-06-10", "2024-06-11"}, "11:00", "13:00", existing)
	assert.Equal(t, []string{"2024-06-10"}, got)
}

func TestFindConflictingDates_PreservesRequestOrder(t *testing.T) {
	existing := []*domain.Reservation{
		confirmed([]string{"2024-06-10", "2024-06-12"}, "08:00", "12:00"),
	}

	got := findConflictingDates(
		[]string{"2024-06-12", "2024-06-11", "2024-06-10"},
		"10:00", "11:00",
		existing,
	)
	assert.Equal(t, []string{"2024-06-12", "2024-06-10"}, got)
}

func TestFindConflictingDates_MultiDateReservation(t *testing.T) {
	// Бронирование покрывает несколько дат, окно действует на каждую из них
	existing := []*domain.Reservation{
		confirmed([]string{"2024-06-10", "2024-06-11", "2024-06-12"}, "06:00", "14:00"),
	}

	got := findConflictingDates([]string{"2024-06-11"}, "13:00", "20:00", existing)
	assert.Equal(t, []string{"2024-06-11"}, got)
}

func TestFindConflictingDates_NoExistingReservations(t *testing.T) {
	got := findConflictingDates([]string{"2024-06-10"}, "08:00", "18:00", nil)
	assert.Empty(t, got)
}

func TestFindConflictingDates_Idempotent(t *testing.T) {
	existing := []*domain.Reservation{
		confirmed([]string{"2024-06-10"}, "08:00", "12:00"),
		confirmed([]string{"2024-06-11"}, "14:00", "20:00"),
	}

	first := findConflictingDates([]string{"2024-06-10", "2024-06-11"}, "11:00", "15:00", existing)
	second := findConflictingDates([]string{"2024-06-10", "2024-06-11"}, "11:00", "15:00", existing)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"2024-06-10", "2024-06-11"}, first)
}
