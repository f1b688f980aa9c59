package response

import (
	"errors"
	"net/http"

	"github.com/synapse-hq/synapse-backend-go/internal/domain/assist"
	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Workforce domain errors
	case errors.Is(err, workforce.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, workforce.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, workforce.ErrRequestAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, workforce.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, workforce.ErrNotPunchedIn):
		Conflict(w, "No open punch-in for today")

	// Assist domain errors
	case errors.Is(err, assist.ErrEmptyQuery):
		BadRequest(w, "Query must not be empty", nil)
	case errors.Is(err, assist.ErrUnavailable):
		ServiceUnavailable(w, "Assistant is temporarily unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
