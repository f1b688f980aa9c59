package http

import (
	"net/http"

	"github.com/synapse-hq/synapse-backend-go/internal/handler/http/response"
	"github.com/synapse-hq/synapse-backend-go/internal/pkg/holiday"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct{}

func NewHolidayHandler() HolidayHandler {
	return &holidayHandlerImpl{}
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, holiday.All())
}
