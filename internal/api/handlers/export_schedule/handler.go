package export_schedule

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fleetops/TFS-ShiftService/internal/api/handlers"
)

// ScheduleReport интерфейс генератора xlsx расписания парка
type ScheduleReport interface {
	Generate(ctx context.Context, out io.Writer) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	report ScheduleReport
	logger Logger
}

func NewHandler(report ScheduleReport, logger Logger) *Handler {
	return &Handler{
		report: report,
		logger: logger,
	}
}

// Handle GET /api/v1/reports/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.report.Generate(r.Context(), &buf); err != nil {
		h.logger.Error("GET /reports/schedule - Failed to generate report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("fleet-schedule-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)

	h.logger.Info("GET /reports/schedule - Report exported: %s", filename)
}
