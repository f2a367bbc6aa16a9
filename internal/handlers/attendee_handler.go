package handlers

import (
	"context"
	"net/http"

	"github.com/bradycon/gatherpoint/internal/helpers"
	"github.com/bradycon/gatherpoint/internal/models"
	"github.com/gin-gonic/gin"
)

type IAttendeeRepo interface {
	List(ctx context.Context) ([]models.AttendeeWithAccommodation, error)
	Get(ctx context.Context, id uint) (models.Attendee, error)
	Create(ctx context.Context, attendee *models.Attendee) error
	Update(ctx context.Context, id uint, update models.AttendeeUpdate) (models.Attendee, error)
	Delete(ctx context.Context, id uint) error
	EmailExists(ctx context.Context, email string) (bool, error)
	Names(ctx context.Context) ([]models.AttendeeName, error)
	Search(ctx context.Context, term string, limit int) ([]models.Attendee, error)
	ListByAccommodation(ctx context.Context, accommodationID uint) ([]models.Attendee, error)
}

// AttendeeHandler serves the admin attendee CRUD endpoints.
type AttendeeHandler struct {
	attendees IAttendeeRepo
}

func NewAttendeeHandler(attendees IAttendeeRepo) *AttendeeHandler {
	return &AttendeeHandler{attendees: attendees}
}

func (h *AttendeeHandler) List(c *gin.Context) {
	attendees, err := h.attendees.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch attendees")
		return
	}
	if attendees == nil {
		attendees = []models.AttendeeWithAccommodation{}
	}
	c.JSON(http.StatusOK, attendees)
}

func (h *AttendeeHandler) Create(c *gin.Context) {
	var attendee models.Attendee
	if err := c.ShouldBindJSON(&attendee); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid attendee payload")
		return
	}
	attendee.ID = 0

	if err := h.attendees.Create(c.Request.Context(), &attendee); err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to create attendee")
		return
	}
	c.JSON(http.StatusOK, attendee)
}

type updateAttendeeRequest struct {
	ID *uint `json:"id"`
	models.AttendeeUpdate
}

func (h *AttendeeHandler) Update(c *gin.Context) {
	var req updateAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid attendee payload")
		return
	}
	if req.ID == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Attendee ID is required")
		return
	}

	attendee, err := h.attendees.Update(c.Request.Context(), *req.ID, req.AttendeeUpdate)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to update attendee")
		return
	}
	c.JSON(http.StatusOK, attendee)
}

func (h *AttendeeHandler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Attendee ID is required")
		return
	}

	if err := h.attendees.Delete(c.Request.Context(), *req.ID); err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to delete attendee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendee deleted successfully"})
}
