package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/synapse-hq/synapse-backend-go/internal/handler/http/response"
	"github.com/synapse-hq/synapse-backend-go/internal/service/report"
)

type ReportHandler interface {
	DownloadAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	service *report.Service
}

func NewReportHandler(service *report.Service) ReportHandler {
	return &reportHandlerImpl{service: service}
}

// DownloadAttendance implements ReportHandler.
func (h *reportHandlerImpl) DownloadAttendance(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.service.AttendanceWorkbook()
	if err != nil {
		slog.Error("Failed to build attendance workbook", "error", err)
		response.InternalServerError(w, "Failed to build report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
