package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	vehicleRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/vehicle"
)

// Service сервис управления парком автомобилей.
// Все операции записи доступны только администраторам; проверка роли
// выполняется на уровне middleware.
type Service struct {
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// List возвращает автомобили парка. При onlyActive=true неактивные
// автомобили исключаются: такой список видят водители при бронировании.
func (s *Service) List(ctx context.Context, onlyActive bool) (*VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return fromDomainVehicleList(vehicles), nil
}

// GetByID возвращает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return fromDomainVehicle(v), nil
}

// Create регистрирует новый автомобиль. Номерной знак нормализуется к
// верхнему регистру и проверяется по формату "XX-XX 000".
func (s *Service) Create(ctx context.Context, plateNumber string) (*VehicleResponse, error) {
	plate, err := normalizePlate(plateNumber)
	if err != nil {
		s.logger.Warn("Create: rejected plate number %q", plateNumber)
		return nil, err
	}

	created, err := s.vehicleRepo.Create(ctx, &domain.Vehicle{
		PlateNumber: plate,
		IsActive:    true,
	})
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrDuplicatePlate) {
			s.logger.Warn("Create: duplicate plate number %s", plate)
			return nil, ErrDuplicatePlate
		}
		s.logger.Error("Create: repository error for plate %s: %v", plate, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: registered vehicle id=%d plate=%s", created.ID, created.PlateNumber)
	return fromDomainVehicle(created), nil
}

// Update изменяет номерной знак и статус активности автомобиля.
// Деактивация не затрагивает существующие бронирования, они остаются
// подтвержденными и продолжают учитываться в проверках доступности.
func (s *Service) Update(ctx context.Context, id int64, plateNumber string, isActive bool) (*VehicleResponse, error) {
	plate, err := normalizePlate(plateNumber)
	if err != nil {
		s.logger.Warn("Update: rejected plate number %q for vehicle id=%d", plateNumber, id)
		return nil, err
	}

	if err := s.vehicleRepo.Update(ctx, id, plate, isActive); err != nil {
		switch {
		case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
			return nil, ErrVehicleNotFound
		case errors.Is(err, vehicleRepo.ErrDuplicatePlate):
			s.logger.Warn("Update: duplicate plate number %s", plate)
			return nil, ErrDuplicatePlate
		default:
			s.logger.Error("Update: repository error for vehicle id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: updated vehicle id=%d plate=%s active=%t", id, plate, isActive)
	return s.GetByID(ctx, id)
}

// Delete удаляет автомобиль из парка
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: removed vehicle id=%d", id)
	return nil
}

func normalizePlate(plateNumber string) (string, error) {
	plate := strings.ToUpper(strings.TrimSpace(plateNumber))
	if !domain.ValidPlateNumber(plate) {
		return "", ErrInvalidPlateNumber
	}
	return plate, nil
}
