package check_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	vehicleRepo "github.com/fleetops/TFS-ShiftService/internal/infra/storage/vehicle"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) GetConfirmedByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type mockVehicleRepo struct {
	mock.Mock
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_Available(t *testing.T) {
	resRepo := new(mockReservationRepo)
	vehRepo := new(mockVehicleRepo)
	ctx := context.Background()

	vehRepo.On("GetByID", ctx, int64(3)).Return(&domain.Vehicle{ID: 3, IsActive: true}, nil).Once()
	resRepo.On("GetConfirmedByVehicle", ctx, int64(3)).Return([]*domain.Reservation{
		{
			Dates:     []string{"2024-06-10"},
			StartTime: "08:00",
			EndTime:   "12:00",
			Status:    domain.StatusConfirmed,
		},
	}, nil).Once()

	resp, err := NewUseCase(resRepo, vehRepo, nopLogger{}).Execute(ctx, &Request{
		VehicleID: 3,
		Dates:     []string{"2024-06-10"},
		StartTime: "12:00",
		EndTime:   "16:00",
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.ConflictingDates)
}

func TestExecute_ConflictingDatesOnly(t *testing.T) {
	resRepo := new(mockReservationRepo)
	vehRepo := new(mockVehicleRepo)
	ctx := context.Background()

	vehRepo.On("GetByID", ctx, int64(3)).Return(&domain.Vehicle{ID: 3, IsActive: true}, nil).Once()
	resRepo.On("GetConfirmedByVehicle", ctx, int64(3)).Return([]*domain.Reservation{
		{
			Dates:     []string{"2024-06-10"},
			StartTime: "08:00",
			EndTime:   "12:00",
			Status:    domain.StatusConfirmed,
		},
	}, nil).Once()

	resp, err := NewUseCase(resRepo, vehRepo, nopLogger{}).Execute(ctx, &Request{
		VehicleID: 3,
		Dates:     []string{"2024-06-10", "2024-06-11"},
		StartTime: "11:00",
		EndTime:   "13:00",
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, []string{"2024-06-10"}, resp.ConflictingDates)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	resRepo := new(mockReservationRepo)
	vehRepo := new(mockVehicleRepo)
	ctx := context.Background()

	vehRepo.On("GetByID", ctx, int64(9)).Return(nil, vehicleRepo.ErrVehicleNotFound).Once()

	_, err := NewUseCase(resRepo, vehRepo, nopLogger{}).Execute(ctx, &Request{
		VehicleID: 9,
		Dates:     []string{"2024-06-10"},
		StartTime: "08:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_RetrievalFailure(t *testing.T) {
	resRepo := new(mockReservationRepo)
	vehRepo := new(mockVehicleRepo)
	ctx := context.Background()

	vehRepo.On("GetByID", ctx, int64(3)).Return(&domain.Vehicle{ID: 3, IsActive: true}, nil).Once()
	resRepo.On("GetConfirmedByVehicle", ctx, int64(3)).Return(nil, errors.New("timeout")).Once()

	_, err := NewUseCase(resRepo, vehRepo, nopLogger{}).Execute(ctx, &Request{
		VehicleID: 3,
		Dates:     []string{"2024-06-10"},
		StartTime: "08:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrRetrieval)
}

func TestExecute_IncompleteRequest(t *testing.T) {
	resRepo := new(mockReservationRepo)
	vehRepo := new(mockVehicleRepo)

	_, err := NewUseCase(resRepo, vehRepo, nopLogger{}).Execute(context.Background(), &Request{
		VehicleID: 3,
		StartTime: "08:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrIncompleteRequest)
	vehRepo.AssertNotCalled(t, "GetByID")
}
