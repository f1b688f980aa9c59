package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/synapse-hq/synapse-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	repo workforce.Repository
}

func NewLeaveHandler(repo workforce.Repository) LeaveHandler {
	return &leaveHandlerImpl{repo: repo}
}

// List implements LeaveHandler. With ?status=Pending only pending requests
// are returned; otherwise the full request log across the workforce.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var out []workforce.LeaveRequestResponse
	for _, e := range h.repo.List(workforce.ListFilter{}) {
		for _, req := range e.Requests {
			if status != "" && string(req.Status) != status {
				continue
			}
			out = append(out, workforce.ToLeaveRequestResponse(req))
		}
	}
	if out == nil {
		out = []workforce.LeaveRequestResponse{}
	}
	response.Success(w, out)
}

// ListForEmployee implements LeaveHandler.
func (h *leaveHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := h.repo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, workforce.ToLeaveRequestResponses(e.Requests))
}

// Submit implements LeaveHandler.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req workforce.SubmitLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	details := map[string]string{}
	reqType := workforce.RequestType(req.Type)
	if reqType != workforce.RequestTypeLeave && reqType != workforce.RequestTypeRegularization {
		details["type"] = "must be leave or regularization"
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		details["start_date"] = "must be YYYY-MM-DD"
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		details["end_date"] = "must be YYYY-MM-DD"
	}
	if len(details) == 0 && end.Before(start) {
		details["end_date"] = "must not precede start_date"
	}
	if len(details) > 0 {
		response.BadRequest(w, "Invalid leave request", details)
		return
	}

	submitted, err := h.repo.SubmitRequest(chi.URLParam(r, "id"), workforce.LeaveRequest{
		Type:      reqType,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Request submitted successfully", workforce.ToLeaveRequestResponse(submitted))
}

// UpdateStatus implements LeaveHandler.
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req workforce.UpdateRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update request status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status := workforce.RequestStatus(req.Status)
	if status != workforce.RequestStatusApproved && status != workforce.RequestStatusRejected {
		response.BadRequest(w, "Invalid status", map[string]string{"status": "must be Approved or Rejected"})
		return
	}

	updated, err := h.repo.SetRequestStatus(chi.URLParam(r, "id"), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Request updated successfully", workforce.ToLeaveRequestResponse(updated))
}
