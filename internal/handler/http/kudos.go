package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/synapse-hq/synapse-backend-go/internal/handler/http/response"
)

type KudosHandler interface {
	Feed(w http.ResponseWriter, r *http.Request)
	Give(w http.ResponseWriter, r *http.Request)
}

type kudosHandlerImpl struct {
	repo workforce.Repository
	now  func() time.Time
}

func NewKudosHandler(repo workforce.Repository, now func() time.Time) KudosHandler {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &kudosHandlerImpl{repo: repo, now: now}
}

// Feed implements KudosHandler.
func (h *kudosHandlerImpl) Feed(w http.ResponseWriter, r *http.Request) {
	response.Success(w, workforce.ToKudosResponses(h.repo.AllKudos()))
}

// Give implements KudosHandler.
func (h *kudosHandlerImpl) Give(w http.ResponseWriter, r *http.Request) {
	var req workforce.GiveKudosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Give kudos decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		response.BadRequest(w, "Message must not be empty", nil)
		return
	}

	sender, err := h.repo.GetByID(req.FromID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	k, err := h.repo.AppendKudos(req.ToID, workforce.Kudos{
		From:       sender.Name,
		FromAvatar: sender.AvatarURL,
		Message:    req.Message,
		Timestamp:  h.now(),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Kudos sent successfully", workforce.ToKudosResponse(k))
}
