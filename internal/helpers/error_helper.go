package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bradycon/gatherpoint/internal/repository"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// RespondWithRepoError maps the repository error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is logged and surfaced as a generic 500 so
// store internals never leak to clients.
func RespondWithRepoError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrEventNotFound):
		RespondWithError(c, http.StatusNotFound, "Event not found")
	case errors.Is(err, repository.ErrAttendeeNotFound):
		RespondWithError(c, http.StatusNotFound, "Attendee not found")
	case errors.Is(err, repository.ErrAccommodationNotFound):
		RespondWithError(c, http.StatusNotFound, "Accommodation not found")
	case errors.Is(err, repository.ErrAttendanceNotFound):
		RespondWithError(c, http.StatusNotFound, "Attendance record not found")
	case errors.Is(err, repository.ErrDuplicateAttendance):
		RespondWithError(c, http.StatusConflict, "Already registered for this event")
	case errors.Is(err, repository.ErrEmailTaken):
		RespondWithError(c, http.StatusConflict, "An attendee with this email already exists")
	default:
		slog.Error(fallback,
			"error", err,
			"request_id", c.GetString("request_id"),
			"path", c.FullPath(),
		)
		RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
