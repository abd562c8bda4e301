package check_availability

import "github.com/fleetops/TFS-ShiftService/pkg/types"

// Request модель запроса проверки доступности автомобиля
type Request struct {
	VehicleID int64            // ID автомобиля
	Dates     []string         // Даты смены ("2006-01-02")
	StartTime types.TimeString // Начало смены
	EndTime   types.TimeString // Конец смены (не включительно)
}

// Response результат проверки: либо интервал свободен на все даты,
// либо перечислены конфликтные даты в порядке запроса
type Response struct {
	VehicleID        int64
	Available        bool
	ConflictingDates []string
}
