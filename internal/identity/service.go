package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	driverRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/driver"
)

// Service сервис аутентификации. Выдает токены сессий после проверки
// пароля и восстанавливает Principal по токену из хранилища.
type Service struct {
	driverRepo DriverRepository
	sessions   SessionStore
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(driverRepo DriverRepository, sessions SessionStore, logger Logger) *Service {
	return &Service{
		driverRepo: driverRepo,
		sessions:   sessions,
		logger:     logger,
	}
}

// Authenticate проверяет пару email/пароль и создает новую сессию.
// Повторный вход не инвалидирует существующие сессии пользователя.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.driverRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, driverRepo.ErrDriverNotFound) {
			s.logger.Warn("Authenticate: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error for email %s: %v", email, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Authenticate: wrong password for email %s", email)
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		Token: uuid.NewString(),
		Principal: Principal{
			UserID:   account.ID,
			FullName: account.FullName,
			Role:     account.Role,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("Authenticate: failed to save session for user=%d: %v", account.ID, err)
		return nil, fmt.Errorf("%w: Authenticate - save session: %v", ErrInternal, err)
	}

	s.logger.Info("Authenticate: user=%d logged in", account.ID)
	return session, nil
}

// Resolve восстанавливает Principal по токену сессии
func (s *Service) Resolve(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Resolve: session store error: %v", err)
		return nil, fmt.Errorf("%w: Resolve - session store: %v", ErrInternal, err)
	}

	principal := session.Principal
	return &principal, nil
}

// Logout удаляет сессию по токену
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: session store error: %v", err)
		return fmt.Errorf("%w: Logout - session store: %v", ErrInternal, err)
	}
	return nil
}
