package create_reservation

import (
	"time"

	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

// Request модель запроса на бронирование смены
type Request struct {
	DriverID   int64            // ID водителя
	DriverName string           // Отображаемое имя водителя (денормализуется в запись)
	VehicleID  int64            // ID автомобиля
	Dates      []string         // Даты смены ("2006-01-02"), одно и то же окно на каждую дату
	StartTime  types.TimeString // Начало смены (например, "08:00")
	EndTime    types.TimeString // Конец смены (не включительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	DriverID    int64            // ID водителя
	DriverName  string           // Имя водителя
	VehicleID   int64            // ID автомобиля
	PlateNumber string           // Госномер (денормализован)
	Dates       []string         // Даты смены
	StartTime   types.TimeString // Начало смены
	EndTime     types.TimeString // Конец смены
	Status      string           // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
