package http

import (
	"log/slog"
	"net/http"

	"github.com/synapse-hq/synapse-backend-go/internal/handler/http/response"
	"github.com/synapse-hq/synapse-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	GetHRDashboard(w http.ResponseWriter, r *http.Request)
	GetTodayAttendance(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{service: service}
}

// GetHRDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetHRDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.GetHRDashboard(r.Context())
	if err != nil {
		slog.Error("Failed to build HR dashboard", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, data)
}

// GetTodayAttendance implements DashboardHandler.
func (h *dashboardHandlerImpl) GetTodayAttendance(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.GetTodayAttendance(r.Context())
	if err != nil {
		slog.Error("Failed to tally today's attendance", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, data)
}
