package drivers

import (
	"context"
	"testing"

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

func (m *mockDriverRepo) Create(ctx context.Context, d *domain.Driver) (*domain.Driver, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *mockDriverRepo) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *mockDriverRepo) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Driver, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Driver), args.Error(1)
}

func (m *mockDriverRepo) Update(ctx context.Context, id int64, fullName, employeeType string) error {
	args := m.Called(ctx, id, fullName, employeeType)
	return args.Error(0)
}

func (m *mockDriverRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validCreateRequest() CreateDriverRequest {
	return CreateDriverRequest{
		Email:        "Max.Mustermann@Example.com",
		FullName:     "Max Mustermann",
		EmployeeType: domain.EmployeeTypeFullTime,
		Password:     "wachtmeister",
	}
}

func TestService_Create_HashesPasswordAndLowercasesEmail(t *testing.T) {
	repo := new(mockDriverRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.Driver) bool {
		if d.Email != "max.mustermann@example.com" || d.Role != domain.RoleDriver {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte("wachtmeister")) == nil
	})).Return(&domain.Driver{
		ID:           1,
		Email:        "max.mustermann@example.com",
		FullName:     "Max Mustermann",
		Role:         domain.RoleDriver,
		EmployeeType: domain.EmployeeTypeFullTime,
	}, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "max.mustermann@example.com", resp.Email)
	assert.Equal(t, "driver", resp.Role)
	repo.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(r *CreateDriverRequest)
		wantErr error
	}{
		{"EmptyEmail", func(r *CreateDriverRequest) { r.Email = "" }, ErrInvalidEmail},
		{"NoAtSign", func(r *CreateDriverRequest) { r.Email = "max.example.com" }, ErrInvalidEmail},
		{"EmptyName", func(r *CreateDriverRequest) { r.FullName = "   " }, ErrEmptyFullName},
		{"UnknownEmployeeType", func(r *CreateDriverRequest) { r.EmployeeType = "Freelancer" }, ErrInvalidEmployeeType},
		{"ShortPassword", func(r *CreateDriverRequest) { r.Password = "kurz" }, ErrInvalidPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockDriverRepo)
			svc := NewService(repo, nopLogger{})

			req := validCreateRequest()
			tc.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	repo := new(mockDriverRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, driverRepo.ErrDuplicateEmail)

	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestService_List_DriversOnly(t *testing.T) {
	repo := new(mockDriverRepo)
	repo.On("ListByRole", mock.Anything, domain.RoleDriver).Return([]*domain.Driver{
		{ID: 1, FullName: "Anna Schmidt", Role: domain.RoleDriver, EmployeeType: domain.EmployeeTypePartTime},
		{ID: 2, FullName: "Max Mustermann", Role: domain.RoleDriver, EmployeeType: domain.EmployeeTypeFullTime},
	}, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Anna Schmidt", resp.Drivers[0].FullName)
}

func TestService_Update_InvalidEmployeeType(t *testing.T) {
	repo := new(mockDriverRepo)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, "Max Mustermann", "Praktikant")
	assert.ErrorIs(t, err, ErrInvalidEmployeeType)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(mockDriverRepo)
	repo.On("Update", mock.Anything, int64(9), "Max Mustermann", domain.EmployeeTypeOther).
		Return(driverRepo.ErrDriverNotFound)

	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 9, "Max Mustermann", domain.EmployeeTypeOther)
	assert.ErrorIs(t, err, ErrDriverNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(mockDriverRepo)
	repo.On("Delete", mock.Anything, int64(9)).Return(driverRepo.ErrDriverNotFound)

	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrDriverNotFound)
}
