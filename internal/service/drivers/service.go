package drivers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	driverRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/driver"
)

const minPasswordLength = 8

// Service сервис управления учетными записями водителей.
// Администраторские учетные записи создаются напрямую в хранилище
// и через этот сервис не проходят.
type Service struct {
	driverRepo DriverRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса водителей
func NewService(driverRepo DriverRepository, logger Logger) *Service {
	return &Service{
		driverRepo: driverRepo,
		logger:     logger,
	}
}

// List возвращает все учетные записи водителей, отсортированные по имени
func (s *Service) List(ctx context.Context) (*DriverListResponse, error) {
	drivers, err := s.driverRepo.ListByRole(ctx, domain.RoleDriver)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return fromDomainDriverList(drivers), nil
}

// GetByID возвращает учетную запись водителя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*DriverResponse, error) {
	d, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, driverRepo.ErrDriverNotFound) {
			return nil, ErrDriverNotFound
		}
		s.logger.Error("GetByID: repository error for driver id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return fromDomainDriver(d), nil
}

// Create регистрирует нового водителя. Пароль хешируется через bcrypt,
// email нормализуется к нижнему регистру.
func (s *Service) Create(ctx context.Context, req CreateDriverRequest) (*DriverResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)

	if err := validateCreateRequest(email, fullName, req.EmployeeType, req.Password); err != nil {
		s.logger.Warn("Create: rejected driver request for email %q: %v", email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - hash password: %v", ErrInternal, err)
	}

	created, err := s.driverRepo.Create(ctx, &domain.Driver{
		Email:        email,
		FullName:     fullName,
		Role:         domain.RoleDriver,
		EmployeeType: req.EmployeeType,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, driverRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: duplicate email %s", email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error for email %s: %v", email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: registered driver id=%d email=%s", created.ID, created.Email)
	return fromDomainDriver(created), nil
}

// Update изменяет имя и тип занятости водителя.
// Email и пароль через эту операцию не меняются.
func (s *Service) Update(ctx context.Context, id int64, fullName, employeeType string) (*DriverResponse, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	if !domain.ValidEmployeeType(employeeType) {
		s.logger.Warn("Update: rejected employee type %q for driver id=%d", employeeType, id)
		return nil, ErrInvalidEmployeeType
	}

	if err := s.driverRepo.Update(ctx, id, fullName, employeeType); err != nil {
		if errors.Is(err, driverRepo.ErrDriverNotFound) {
			return nil, ErrDriverNotFound
		}
		s.logger.Error("Update: repository error for driver id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated driver id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет учетную запись водителя
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.driverRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, driverRepo.ErrDriverNotFound) {
			return ErrDriverNotFound
		}
		s.logger.Error("Delete: repository error for driver id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: removed driver id=%d", id)
	return nil
}

func validateCreateRequest(email, fullName, employeeType, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if fullName == "" {
		return ErrEmptyFullName
	}
	if !domain.ValidEmployeeType(employeeType) {
		return ErrInvalidEmployeeType
	}
	if len(password) < minPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}
