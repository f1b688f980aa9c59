package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	assistdomain "github.com/synapse-hq/synapse-backend-go/internal/domain/assist"
	"github.com/synapse-hq/synapse-backend-go/internal/handler/http/response"
	"github.com/synapse-hq/synapse-backend-go/internal/service/assist"
)

type AssistHandler interface {
	Chat(w http.ResponseWriter, r *http.Request)
	MissedPunch(w http.ResponseWriter, r *http.Request)
}

// assistHandlerImpl serves the Gemini-backed helpers. The service is nil when
// no API key is configured; every route then answers 503.
type assistHandlerImpl struct {
	service *assist.Service
}

func NewAssistHandler(service *assist.Service) AssistHandler {
	return &assistHandlerImpl{service: service}
}

// Chat implements AssistHandler.
func (h *assistHandlerImpl) Chat(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		response.ServiceUnavailable(w, "Assistant is not configured")
		return
	}

	var req assistdomain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assist chat decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.service.Chat(r.Context(), req)
	if err != nil {
		slog.Error("Assist chat failed", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// MissedPunch implements AssistHandler.
func (h *assistHandlerImpl) MissedPunch(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		response.ServiceUnavailable(w, "Assistant is not configured")
		return
	}

	var input assistdomain.MissedPunchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		slog.Error("Missed punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decision, err := h.service.MissedPunch(r.Context(), input)
	if err != nil {
		slog.Error("Missed punch triage failed", "employee_id", input.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, decision)
}
