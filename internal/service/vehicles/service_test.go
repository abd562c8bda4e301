package vehicles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	vehicleRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/vehicle"
)

type mockVehicleRepo struct {
	mock.Mock
}

func (m *mockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) Update(ctx context.Context, id int64, plateNumber string, isActive bool) error {
	args := m.Called(ctx, id, plateNumber, isActive)
	return args.Error(0)
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestService_Create_NormalizesPlate(t *testing.T) {
	repo := new(mockVehicleRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
		return v.PlateNumber == "HH-QQ 705" && v.IsActive
	})).Return(&domain.Vehicle{ID: 1, PlateNumber: "HH-QQ 705", IsActive: true}, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), "  hh-qq 705 ")
	require.NoError(t, err)
	assert.Equal(t, "HH-QQ 705", resp.PlateNumber)
	repo.AssertExpectations(t)
}

func TestService_Create_InvalidPlate(t *testing.T) {
	cases := []struct {
		name  string
		plate string
	}{
		{"Empty", ""},
		{"MissingSpace", "HH-QQ705"},
		{"TooFewDigits", "HH-QQ 75"},
		{"FourDigits", "HH-QQ 7051"},
		{"DigitInLetters", "H1-QQ 705"},
		{"NoDash", "HHQQ 705"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockVehicleRepo)
			svc := NewService(repo, nopLogger{})

			_, err := svc.Create(context.Background(), tc.plate)
			assert.ErrorIs(t, err, ErrInvalidPlateNumber)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_DuplicatePlate(t *testing.T) {
	repo := new(mockVehicleRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, vehicleRepo.ErrDuplicatePlate)

	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), "HH-QQ 705")
	assert.ErrorIs(t, err, ErrDuplicatePlate)
}

func TestService_List_OnlyActive(t *testing.T) {
	repo := new(mockVehicleRepo)
	repo.On("List", mock.Anything, true).Return([]*domain.Vehicle{
		{ID: 1, PlateNumber: "HH-QQ 705", IsActive: true},
	}, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Vehicles, 1)
	assert.Equal(t, 1, resp.Total)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(mockVehicleRepo)
	repo.On("Update", mock.Anything, int64(9), "HH-QQ 705", false).Return(vehicleRepo.ErrVehicleNotFound)

	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 9, "HH-QQ 705", false)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestService_Update_Deactivate(t *testing.T) {
	repo := new(mockVehicleRepo)
	repo.On("Update", mock.Anything, int64(1), "HH-QQ 705", false).Return(nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Vehicle{
		ID: 1, PlateNumber: "HH-QQ 705", IsActive: false,
	}, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, "HH-QQ 705", false)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(mockVehicleRepo)
	repo.On("Delete", mock.Anything, int64(9)).Return(vehicleRepo.ErrVehicleNotFound)

	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
