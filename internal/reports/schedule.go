package reports

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
)

var scheduleColumns = []string{"Date", "Driver", "Start", "End", "Status"}

// ScheduleReport генератор xlsx расписания парка: лист на автомобиль,
// строка на каждую дату бронирования.
type ScheduleReport struct {
	vehicleRepo     VehicleRepository
	reservationRepo ReservationRepository
	newWriter       func() ExcelWriter
	logger          Logger
}

// NewScheduleReport создает генератор расписания парка
func NewScheduleReport(vehicleRepo VehicleRepository, reservationRepo ReservationRepository, logger Logger) *ScheduleReport {
	return &ScheduleReport{
		vehicleRepo:     vehicleRepo,
		reservationRepo: reservationRepo,
		newWriter:       NewExcelizeWriter,
		logger:          logger,
	}
}

type scheduleRow struct {
	date       string
	driverName string
	startTime  string
	endTime    string
	status     string
}

// Generate собирает расписание всех автомобилей парка и пишет xlsx в out.
// Автомобили без бронирований получают лист только с заголовком.
func (r *ScheduleReport) Generate(ctx context.Context, out io.Writer) error {
	vehicles, err := r.vehicleRepo.List(ctx, false)
	if err != nil {
		return fmt.Errorf("schedule report: list vehicles: %w", err)
	}

	w := r.newWriter()
	defer w.Close()

	for _, v := range vehicles {
		if err := r.writeVehicleSheet(ctx, w, v); err != nil {
			return err
		}
	}

	if len(vehicles) == 0 {
		// excelize не умеет сохранять книгу без листов
		if err := w.AddSheet("Fleet"); err != nil {
			return fmt.Errorf("schedule report: add sheet: %w", err)
		}
		if err := w.WriteHeader(scheduleColumns); err != nil {
			return fmt.Errorf("schedule report: write header: %w", err)
		}
	}

	if err := w.Save(out); err != nil {
		return fmt.Errorf("schedule report: save: %w", err)
	}

	r.logger.Info("schedule report generated for %d vehicles", len(vehicles))
	return nil
}

func (r *ScheduleReport) writeVehicleSheet(ctx context.Context, w ExcelWriter, v *domain.Vehicle) error {
	if err := w.AddSheet(v.PlateNumber); err != nil {
		return fmt.Errorf("schedule report: add sheet for vehicle %d: %w", v.ID, err)
	}
	if err := w.WriteHeader(scheduleColumns); err != nil {
		return fmt.Errorf("schedule report: write header: %w", err)
	}

	reservations, err := r.reservationRepo.GetConfirmedByVehicle(ctx, v.ID)
	if err != nil {
		return fmt.Errorf("schedule report: load reservations for vehicle %d: %w", v.ID, err)
	}

	for _, row := range flattenSchedule(reservations) {
		if err := w.WriteRow([]interface{}{row.date, row.driverName, row.startTime, row.endTime, row.status}); err != nil {
			return fmt.Errorf("schedule report: write row: %w", err)
		}
	}
	return nil
}

// flattenSchedule разворачивает многодневные бронирования в строки-даты
// и сортирует их по дате, затем по времени начала.
func flattenSchedule(reservations []*domain.Reservation) []scheduleRow {
	rows := make([]scheduleRow, 0, len(reservations))
	for _, res := range reservations {
		for _, date := range res.Dates {
			rows = append(rows, scheduleRow{
				date:       date,
				driverName: res.DriverName,
				startTime:  res.StartTime.String(),
				endTime:    res.EndTime.String(),
				status:     string(res.Status),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].date != rows[j].date {
			return rows[i].date < rows[j].date
		}
		return rows[i].startTime < rows[j].startTime
	})
	return rows
}
