package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	reservationRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/reservation"
	"github.com/fleetops/TFS-ShiftService/internal/service/reservations/models"
)

// Service сервис чтения и отмены бронирований смен.
// Создание идет через отдельный use case; здесь остаются операции,
// не требующие транзакционной проверки доступности.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID.
// Водитель видит только свои бронирования; администратор видит любые.
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64, actorRole domain.Role) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, actorID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkOwnerAccess(reservation, actorID, actorRole); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", actorID, id)
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// GetDriverReservations получает бронирования водителя, новые первыми.
// Водитель может запросить только свой список; администратор любой список.
func (s *Service) GetDriverReservations(ctx context.Context, driverID int64, actorID int64, actorRole domain.Role) (*models.ReservationListResponse, error) {
	s.logger.Info("GetDriverReservations: fetching reservations for driver=%d, actor=%d", driverID, actorID)

	if driverID != actorID && actorRole != domain.RoleAdmin {
		s.logger.Warn("GetDriverReservations: access denied for user=%d to driver=%d list", actorID, driverID)
		return nil, ErrAccessDenied
	}

	reservations, err := s.reservationRepo.GetByDriverID(ctx, driverID)
	if err != nil {
		s.logger.Error("GetDriverReservations: repository error for driver=%d: %v", driverID, err)
		return nil, fmt.Errorf("%w: GetDriverReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDriverReservations: fetched %d reservations for driver=%d", len(reservations), driverID)
	return models.FromDomainReservationList(reservations), nil
}

// GetVehicleReservations получает подтвержденные бронирования автомобиля.
// Используется административным расписанием парка.
func (s *Service) GetVehicleReservations(ctx context.Context, vehicleID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetVehicleReservations: fetching reservations for vehicle=%d", vehicleID)

	reservations, err := s.reservationRepo.GetConfirmedByVehicle(ctx, vehicleID)
	if err != nil {
		s.logger.Error("GetVehicleReservations: repository error for vehicle=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: GetVehicleReservations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование: запись физически удаляется и сразу
// перестает учитываться в проверках доступности.
// Водитель отменяет только свои бронирования; администратор любые бронирования.
func (s *Service) Cancel(ctx context.Context, id int64, actorID int64, actorRole domain.Role) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, actorID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := checkOwnerAccess(reservation, actorID, actorRole); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", actorID, id)
		return err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// checkOwnerAccess проверяет, что actor владеет бронированием или является администратором
func checkOwnerAccess(reservation *domain.Reservation, actorID int64, actorRole domain.Role) error {
	if reservation.DriverID == actorID || actorRole == domain.RoleAdmin {
		return nil
	}
	return ErrAccessDenied
}
