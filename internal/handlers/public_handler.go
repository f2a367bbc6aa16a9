package handlers

import (
	"net/http"
	"time"

	"github.com/bradycon/gatherpoint/internal/helpers"
	"github.com/bradycon/gatherpoint/internal/models"
	"github.com/gin-gonic/gin"
)

const upcomingEventsLimit = 6

// PublicHandler serves the unauthenticated read-only mirrors of event and
// accommodation data.
type PublicHandler struct {
	events         IEventRepo
	accommodations IAccommodationRepo
	attendees      IAttendeeRepo
	attendance     IAttendanceRepo
}

func NewPublicHandler(events IEventRepo, accommodations IAccommodationRepo, attendees IAttendeeRepo, attendance IAttendanceRepo) *PublicHandler {
	return &PublicHandler{
		events:         events,
		accommodations: accommodations,
		attendees:      attendees,
		attendance:     attendance,
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// ListEvents hides past events from the public site.
func (h *PublicHandler) ListEvents(c *gin.Context) {
	events, err := h.events.ListFrom(c.Request.Context(), today())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *PublicHandler) UpcomingEvents(c *gin.Context) {
	events, err := h.events.ListUpcoming(c.Request.Context(), today(), upcomingEventsLimit)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch upcoming events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *PublicHandler) GetEvent(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	event, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch event")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *PublicHandler) EventAttendees(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	rows, err := h.attendance.ListByEvent(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch event attendees")
		return
	}
	if rows == nil {
		rows = []models.EventAttendeeRow{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *PublicHandler) ListAccommodations(c *gin.Context) {
	accommodations, err := h.accommodations.ListPublic(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch accommodations")
		return
	}
	if accommodations == nil {
		accommodations = []models.Accommodation{}
	}
	c.JSON(http.StatusOK, accommodations)
}

func (h *PublicHandler) GetAccommodation(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid accommodation ID")
		return
	}

	accommodation, err := h.accommodations.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch accommodation")
		return
	}
	c.JSON(http.StatusOK, accommodation)
}

func (h *PublicHandler) AccommodationAttendees(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid accommodation ID")
		return
	}

	attendees, err := h.attendees.ListByAccommodation(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch accommodation attendees")
		return
	}

	type guestRow struct {
		ID        uint   `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		CountryID string `json:"countryId"`
	}
	rows := make([]guestRow, 0, len(attendees))
	for _, a := range attendees {
		rows = append(rows, guestRow{
			ID:        a.ID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			CountryID: a.CountryID,
		})
	}
	c.JSON(http.StatusOK, rows)
}
