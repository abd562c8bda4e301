package identity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	driverRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/driver"
)

type mockDriverRepo struct {
	mock.Mock
}

func (m *mockDriverRepo) GetByEmail(ctx context.Context, email string) (*domain.Driver, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestStore(t *testing.T, ttl time.Duration) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionStore(client, ttl), mr
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Authenticate_Success(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	repo := new(mockDriverRepo)
	repo.On("GetByEmail", mock.Anything, "max@example.com").Return(&domain.Driver{
		ID:           42,
		Email:        "max@example.com",
		FullName:     "Max Mustermann",
		Role:         domain.RoleDriver,
		PasswordHash: hashOf(t, "wachtmeister"),
	}, nil)

	svc := NewService(repo, store, nopLogger{})

	session, err := svc.Authenticate(context.Background(), "  Max@Example.com ", "wachtmeister")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, int64(42), session.Principal.UserID)
	assert.Equal(t, domain.RoleDriver, session.Principal.Role)

	// сессия должна восстанавливаться по выданному токену
	principal, err := svc.Resolve(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, "Max Mustermann", principal.FullName)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	repo := new(mockDriverRepo)
	repo.On("GetByEmail", mock.Anything, "max@example.com").Return(&domain.Driver{
		ID:           42,
		PasswordHash: hashOf(t, "wachtmeister"),
	}, nil)

	svc := NewService(repo, store, nopLogger{})

	_, err := svc.Authenticate(context.Background(), "max@example.com", "falsch")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Authenticate_UnknownEmail(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	repo := new(mockDriverRepo)
	repo.On("GetByEmail", mock.Anything, "none@example.com").Return(nil, driverRepo.ErrDriverNotFound)

	svc := NewService(repo, store, nopLogger{})

	_, err := svc.Authenticate(context.Background(), "none@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Resolve_ExpiredSession(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)

	repo := new(mockDriverRepo)
	repo.On("GetByEmail", mock.Anything, "max@example.com").Return(&domain.Driver{
		ID:           42,
		PasswordHash: hashOf(t, "wachtmeister"),
	}, nil)

	svc := NewService(repo, store, nopLogger{})

	session, err := svc.Authenticate(context.Background(), "max@example.com", "wachtmeister")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = svc.Resolve(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Resolve_EmptyToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	svc := NewService(new(mockDriverRepo), store, nopLogger{})

	_, err := svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Logout_InvalidatesSession(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	repo := new(mockDriverRepo)
	repo.On("GetByEmail", mock.Anything, "max@example.com").Return(&domain.Driver{
		ID:           42,
		PasswordHash: hashOf(t, "wachtmeister"),
	}, nil)

	svc := NewService(repo, store, nopLogger{})

	session, err := svc.Authenticate(context.Background(), "max@example.com", "wachtmeister")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.Token))

	_, err = svc.Resolve(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
