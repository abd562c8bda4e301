package create_reservation

import (
	"fmt"
	"time"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

// validateRequest проверяет, что все обязательные поля заполнены и корректны
func validateRequest(req *Request) error {
	if req.DriverID <= 0 {
		return fmt.Errorf("%w: driverID must be positive", ErrIncompleteRequest)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID is required", ErrIncompleteRequest)
	}

	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrIncompleteRequest)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrIncompleteRequest)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	for _, date := range req.Dates {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, date)
		}
	}

	return nil
}

// validateShiftDuration проверяет интервал смены по политике парка.
// Чистая функция двух аргументов, без побочных эффектов:
// длительность должна быть строго положительной и не превышать 10 часов.
// Ровно 10 часов допустимо.
func validateShiftDuration(start, end types.TimeString) error {
	duration, err := start.MinutesUntil(end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if duration <= 0 {
		return ErrNonPositiveDuration
	}

	if duration > domain.MaxShiftDurationMinutes {
		return ErrDurationTooLong
	}

	return nil
}

// normalizeDates убирает дубликаты, сохраняя порядок запроса
func normalizeDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	result := make([]string, 0, len(dates))

	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}

	return result
}
