package reports

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

type mockVehicleRepo struct {
	mock.Mock
}

func (m *mockVehicleRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeWriter записывает листы и строки в память вместо xlsx
type fakeWriter struct {
	sheets  []string
	headers [][]string
	rows    map[string][][]interface{}
	current string
	saved   bool
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{rows: make(map[string][][]interface{})}
}

func (f *fakeWriter) AddSheet(name string) error {
	f.sheets = append(f.sheets, name)
	f.current = name
	return nil
}

func (f *fakeWriter) WriteHeader(columns []string) error {
	f.headers = append(f.headers, columns)
	return nil
}

func (f *fakeWriter) WriteRow(row []interface{}) error {
	f.rows[f.current] = append(f.rows[f.current], row)
	return nil
}

func (f *fakeWriter) Save(w io.Writer) error {
	f.saved = true
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func reservationOn(dates []string, driverName, start, end string) *domain.Reservation {
	return &domain.Reservation{
		DriverID:    1,
		DriverName:  driverName,
		Dates:       dates,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      domain.StatusConfirmed,
	}
}

func newTestReport(vehicles *mockVehicleRepo, reservations *mockReservationRepo, w ExcelWriter) *ScheduleReport {
	r := NewScheduleReport(vehicles, reservations, nopLogger{})
	r.newWriter = func() ExcelWriter { return w }
	return r
}

func TestScheduleReport_SheetPerVehicle(t *testing.T) {
	vehicles := new(mockVehicleRepo)
	vehicles.On("List", mock.Anything, false).Return([]*domain.Vehicle{
		{ID: 1, PlateNumber: "HH-QQ 705", IsActive: true},
		{ID: 2, PlateNumber: "HH-AB 123", IsActive: false},
	}, nil)

	reservations := new(mockReservationRepo)
	reservations.On("GetConfirmedByVehicle", mock.Anything, int64(1)).Return([]*domain.Reservation{
		reservationOn([]string{"2026-09-02", "2026-09-01"}, "Max Mustermann", "08:00", "16:00"),
	}, nil)
	reservations.On("GetConfirmedByVehicle", mock.Anything, int64(2)).Return([]*domain.Reservation{}, nil)

	w := newFakeWriter()
	report := newTestReport(vehicles, reservations, w)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(context.Background(), &buf))

	assert.Equal(t, []string{"HH-QQ 705", "HH-AB 123"}, w.sheets)
	assert.True(t, w.saved)

	// многодневное бронирование развернуто в строки и отсортировано по дате
	rows := w.rows["HH-QQ 705"]
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-09-01", rows[0][0])
	assert.Equal(t, "2026-09-02", rows[1][0])
	assert.Equal(t, "Max Mustermann", rows[0][1])

	assert.Empty(t, w.rows["HH-AB 123"])
}

func TestScheduleReport_NoVehicles(t *testing.T) {
	vehicles := new(mockVehicleRepo)
	vehicles.On("List", mock.Anything, false).Return([]*domain.Vehicle{}, nil)

	reservations := new(mockReservationRepo)

	w := newFakeWriter()
	report := newTestReport(vehicles, reservations, w)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(context.Background(), &buf))

	assert.Equal(t, []string{"Fleet"}, w.sheets)
	assert.True(t, w.saved)
}

func TestScheduleReport_SortsByStartTimeWithinDate(t *testing.T) {
	vehicles := new(mockVehicleRepo)
	vehicles.On("List", mock.Anything, false).Return([]*domain.Vehicle{
		{ID: 1, PlateNumber: "HH-QQ 705", IsActive: true},
	}, nil)

	reservations := new(mockReservationRepo)
	reservations.On("GetConfirmedByVehicle", mock.Anything, int64(1)).Return([]*domain.Reservation{
		reservationOn([]string{"2026-09-01"}, "Anna Schmidt", "14:00", "20:00"),
		reservationOn([]string{"2026-09-01"}, "Max Mustermann", "06:00", "14:00"),
	}, nil)

	w := newFakeWriter()
	report := newTestReport(vehicles, reservations, w)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(context.Background(), &buf))

	rows := w.rows["HH-QQ 705"]
	require.Len(t, rows, 2)
	assert.Equal(t, "Max Mustermann", rows[0][1])
	assert.Equal(t, "Anna Schmidt", rows[1][1])
}

func TestExcelizeWriter_ProducesWorkbook(t *testing.T) {
	w := NewExcelizeWriter()
	defer w.Close()

	require.NoError(t, w.AddSheet("HH-QQ 705"))
	require.NoError(t, w.WriteHeader([]string{"Date", "Driver"}))
	require.NoError(t, w.WriteRow([]interface{}{"2026-09-01", "Max Mustermann"}))

	var buf bytes.Buffer
	require.NoError(t, w.Save(&buf))
	assert.NotZero(t, buf.Len())
}
