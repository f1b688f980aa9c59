package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/synapse-hq/synapse-backend-go/internal/handler/http/response"
)

type WorkforceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
}

type workforceHandlerImpl struct {
	repo workforce.Repository
	now  func() time.Time
}

func NewWorkforceHandler(repo workforce.Repository, now func() time.Time) WorkforceHandler {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &workforceHandlerImpl{repo: repo, now: now}
}

// List implements WorkforceHandler.
func (h *workforceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := workforce.ListFilter{
		Department: r.URL.Query().Get("department"),
		Query:      r.URL.Query().Get("q"),
	}

	employees := h.repo.List(filter)
	out := make([]workforce.EmployeeSummaryResponse, len(employees))
	for i, e := range employees {
		out[i] = workforce.ToEmployeeSummaryResponse(e)
	}
	response.Success(w, out)
}

// GetByID implements WorkforceHandler.
func (h *workforceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	e, err := h.repo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, workforce.ToEmployeeResponse(e))
}

// GetAttendance implements WorkforceHandler.
func (h *workforceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	e, err := h.repo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, workforce.ToAttendanceRecordResponses(e.Attendance))
}

// PunchIn implements WorkforceHandler.
func (h *workforceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.repo.PunchIn(id, h.now())
	if err != nil {
		slog.Error("Punch-in failed", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punched in successfully", workforce.ToAttendanceRecordResponse(rec))
}

// PunchOut implements WorkforceHandler.
func (h *workforceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.repo.PunchOut(id, h.now())
	if err != nil {
		slog.Error("Punch-out failed", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punched out successfully", workforce.ToAttendanceRecordResponse(rec))
}
