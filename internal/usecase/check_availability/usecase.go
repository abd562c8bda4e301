package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	vehicleRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/vehicle"
	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

// UseCase use case проверки доступности автомобиля: сухой прогон проверки
// конфликтов без записи. Результат носит информационный характер: между
// проверкой и отправкой заявки состояние может измениться, поэтому сценарий
// бронирования всегда повторяет проверку внутри своей транзакции.
type UseCase struct {
	reservationRepo ReservationRepository
	vehicleRepo     VehicleRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: vehicle=%d, dates=%d, interval=%s-%s",
		req.VehicleID, len(req.Dates), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CheckAvailability: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: get vehicle: %v", ErrRetrieval, err)
	}

	existing, err := uc.reservationRepo.GetConfirmedByVehicle(ctx, req.VehicleID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get reservations for vehicle=%d: %v",
			req.VehicleID, err)
		return nil, fmt.Errorf("%w: get reservations: %v", ErrRetrieval, err)
	}

	conflicting := findConflictingDates(req.Dates, req.StartTime, req.EndTime, existing)

	uc.logger.Info("CheckAvailability: vehicle=%d, conflicts=%d", req.VehicleID, len(conflicting))

	return &Response{
		VehicleID:        req.VehicleID,
		Available:        len(conflicting) == 0,
		ConflictingDates: conflicting,
	}, nil
}

// validateRequest проверяет, что все обязательные поля заполнены и корректны
func validateRequest(req *Request) error {
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

// findConflictingDates повторяет правило пересечения сценария бронирования:
// закрытое-начало/открытый-конец, каждая дата проверяется независимо
func findConflictingDates(
	dates []string,
	start, end types.TimeString,
	existing []*domain.Reservation,
) []string {
	conflicting := make([]string, 0)

	for _, date := range dates {
		for _, res := range existing {
			if !res.IsConfirmed() || !res.CoversDate(date) {
				continue
			}
			if res.OverlapsInterval(start, end) {
				conflicting = append(conflicting, date)
				break
			}
		}
	}

	return conflicting
}
