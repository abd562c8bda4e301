package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	vehicleRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/vehicle"
)

// UseCase use case бронирования смены: валидация длительности, проверка
// доступности автомобиля и запись бронирования как единый исход,
// либо всё, либо ничего.
type UseCase struct {
	reservationRepo ReservationRepository
	vehicleRepo     VehicleRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	vehicleRepo VehicleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case бронирования смены.
// Проверка доступности и запись выполняются в сериализуемой транзакции
// с блокировкой строк бронирований автомобиля: две конкурирующие заявки
// на пересекающиеся интервалы не могут пройти обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: driver=%d, vehicle=%d, dates=%d, interval=%s-%s",
		req.DriverID, req.VehicleID, len(req.Dates), req.StartTime, req.EndTime)

	// 1. Проверка полноты запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация длительности смены
	if err := validateShiftDuration(req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateReservation: duration validation failed: %v", err)
		return nil, err
	}

	dates := normalizeDates(req.Dates)

	// 3. Получаем автомобиль, отсюда берется денормализуемый госномер
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateReservation: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateReservation: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: get vehicle: %v", ErrRetrieval, err)
	}

	if !vehicle.IsBookable() {
		uc.logger.Warn("CreateReservation: vehicle id=%d is inactive", req.VehicleID)
		return nil, ErrVehicleInactive
	}

	var result *domain.Reservation

	// 4. Проверка доступности + запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Все подтвержденные бронирования автомобиля, с блокировкой FOR UPDATE
		existing, err := uc.reservationRepo.GetConfirmedByVehicle(txCtx, req.VehicleID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations for vehicle=%d: %v",
				req.VehicleID, err)
			return fmt.Errorf("%w: get reservations: %v", ErrRetrieval, err)
		}

		// 4.2. Поиск конфликтных дат
		if conflicting := findConflictingDates(dates, req.StartTime, req.EndTime, existing); len(conflicting) > 0 {
			uc.logger.Warn("CreateReservation: vehicle=%d unavailable on %v", req.VehicleID, conflicting)
			return &ConflictError{Dates: conflicting}
		}

		// 4.3. Запись бронирования
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			DriverID:    req.DriverID,
			DriverName:  req.DriverName,
			VehicleID:   req.VehicleID,
			PlateNumber: vehicle.PlateNumber,
			Dates:       dates,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      domain.StatusConfirmed,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: create reservation: %v", ErrPersistence, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Исчерпанные повторы сериализации приходят из менеджера транзакций
		// без нашей обёртки, классифицируем их как ошибку записи.
		if !isUseCaseError(err) {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d for driver=%d",
		result.ID, result.DriverID)

	return &Response{
		ID:          result.ID,
		DriverID:    result.DriverID,
		DriverName:  result.DriverName,
		VehicleID:   result.VehicleID,
		PlateNumber: result.PlateNumber,
		Dates:       result.Dates,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// isUseCaseError сообщает, что ошибка уже классифицирована этим пакетом
func isUseCaseError(err error) bool {
	return errors.Is(err, ErrRetrieval) ||
		errors.Is(err, ErrPersistence) ||
		errors.Is(err, ErrVehicleUnavailable)
}
