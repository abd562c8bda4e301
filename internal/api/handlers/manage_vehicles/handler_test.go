package manage_vehicles

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/TFS-ShiftService/internal/service/vehicles"
	"github.com/fleetops/TFS-ShiftService/pkg/ptr"
)

type mockVehicleService struct {
	mock.Mock
}

func (m *mockVehicleService) List(ctx context.Context, onlyActive bool) (*vehicles.VehicleListResponse, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicles.VehicleListResponse), args.Error(1)
}

func (m *mockVehicleService) Create(ctx context.Context, plateNumber string) (*vehicles.VehicleResponse, error) {
	args := m.Called(ctx, plateNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicles.VehicleResponse), args.Error(1)
}

func (m *mockVehicleService) Update(ctx context.Context, id int64, plateNumber string, isActive bool) (*vehicles.VehicleResponse, error) {
	args := m.Called(ctx, id, plateNumber, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicles.VehicleResponse), args.Error(1)
}

func (m *mockVehicleService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandler_Create_InvalidPlateMapsTo400(t *testing.T) {
	svc := new(mockVehicleService)
	svc.On("Create", mock.Anything, "not-a-plate").Return(nil, vehicles.ErrInvalidPlateNumber)

	h := NewHandler(svc, nopLogger{})

	body, _ := json.Marshal(VehicleRequest{PlateNumber: "not-a-plate"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Create_DuplicateMapsTo409(t *testing.T) {
	svc := new(mockVehicleService)
	svc.On("Create", mock.Anything, "HH-QQ 705").Return(nil, vehicles.ErrDuplicatePlate)

	h := NewHandler(svc, nopLogger{})

	body, _ := json.Marshal(VehicleRequest{PlateNumber: "HH-QQ 705"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Update_Deactivates(t *testing.T) {
	svc := new(mockVehicleService)
	svc.On("Update", mock.Anything, int64(7), "HH-QQ 705", false).Return(&vehicles.VehicleResponse{
		ID:          7,
		PlateNumber: "HH-QQ 705",
		IsActive:    false,
	}, nil)

	h := NewHandler(svc, nopLogger{})

	body, _ := json.Marshal(VehicleRequest{PlateNumber: "HH-QQ 705", IsActive: ptr.Ptr(false)})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/vehicles/7", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"vehicleId": "7"})
	rec := httptest.NewRecorder()

	h.HandleUpdate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp vehicles.VehicleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
	svc.AssertExpectations(t)
}

func TestHandler_Delete_NotFoundMapsTo404(t *testing.T) {
	svc := new(mockVehicleService)
	svc.On("Delete", mock.Anything, int64(9)).Return(vehicles.ErrVehicleNotFound)

	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/vehicles/9", nil)
	req = mux.SetURLVars(req, map[string]string{"vehicleId": "9"})
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
