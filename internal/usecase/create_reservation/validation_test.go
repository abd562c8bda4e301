package create_reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

func TestValidateShiftDuration(t *testing.T) {
	tests := []struct {
		name    string
		start   types.TimeString
		end     types.TimeString
		wantErr error
	}{
		{name: "OneHour", start: "08:00", end: "09:00", wantErr: nil},
		{name: "ExactlyTenHours", start: "08:00", end: "18:00", wantErr: nil},
		{name: "OneMinute", start: "08:00", end: "08:01", wantErr: nil},
		{name: "ZeroDuration", start: "08:00", end: "08:00", wantErr: ErrNonPositiveDuration},
		{name: "EndBeforeStart", start: "18:00", end: "08:00", wantErr: ErrNonPositiveDuration},
		{name: "TenHoursOneMinute", start: "08:00", end: "18:01", wantErr: ErrDurationTooLong},
		{name: "FullDay", start: "00:00", end: "23:59", wantErr: ErrDurationTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateShiftDuration(tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			DriverID:   7,
			DriverName: "Hans Meier",
			VehicleID:  3,
			Dates:      []string{"2024-06-10"},
			StartTime:  "08:00",
			EndTime:    "16:00",
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validateRequest(valid()))
	})

	t.Run("MissingVehicle", func(t *testing.T) {
		req := valid()
		req.VehicleID = 0
		assert.ErrorIs(t, validateRequest(req), ErrIncompleteRequest)
	})

	t.Run("EmptyDates", func(t *testing.T) {
		req := valid()
		req.Dates = nil
		assert.ErrorIs(t, validateRequest(req), ErrIncompleteRequest)
	})

	t.Run("MissingTimes", func(t *testing.T) {
		req := valid()
		req.EndTime = ""
		assert.ErrorIs(t, validateRequest(req), ErrIncompleteRequest)
	})

	t.Run("MalformedDate", func(t *testing.T) {
		req := valid()
		req.Dates = []string{"10.06.2024"}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("MalformedTime", func(t *testing.T) {
		req := valid()
		req.StartTime = "8am"
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}

func TestNormalizeDates(t *testing.T) {
	got := normalizeDates([]string{"2024-06-11", "2024-06-10", "2024-06-11", "2024-06-12"})
	assert.Equal(t, []string{"2024-06-11", "2024-06-10", "2024-06-12"}, got)
}
