package handlers

import (
	"context"
	"net/http"

	"github.com/bradycon/gatherpoint/internal/helpers"
	"github.com/bradycon/gatherpoint/internal/models"
	"github.com/gin-gonic/gin"
)

type IAttendanceRepo interface {
	List(ctx context.Context) ([]models.EventAttendance, error)
	Create(ctx context.Context, link *models.EventAttendance) error
	Get(ctx context.Context, id uint) (models.EventAttendance, error)
	Update(ctx context.Context, id uint, update models.EventAttendanceUpdate) (models.EventAttendance, error)
	Delete(ctx context.Context, id uint) (models.EventAttendance, error)
	ListByEvent(ctx context.Context, eventID uint) ([]models.EventAttendeeRow, error)
	ListByAttendee(ctx context.Context, attendeeID uint) ([]models.AttendeeEventRow, error)
}

// AttendanceHandler manages event-attendee links. Create backs both the
// admin "add to event" action and the public self-RSVP, which share the
// same validation rules.
type AttendanceHandler struct {
	attendance IAttendanceRepo
}

func NewAttendanceHandler(attendance IAttendanceRepo) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

func (h *AttendanceHandler) List(c *gin.Context) {
	links, err := h.attendance.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch event attendance")
		return
	}
	if links == nil {
		links = []models.EventAttendance{}
	}
	c.JSON(http.StatusOK, links)
}

type createAttendanceRequest struct {
	EventID    *uint   `json:"eventId"`
	AttendeeID *uint   `json:"attendeeId"`
	Status     *string `json:"status"`
}

func (h *AttendanceHandler) Create(c *gin.Context) {
	var req createAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid attendance payload")
		return
	}
	// Pointer presence, not value truthiness: id 0 is a present field.
	if req.EventID == nil || req.AttendeeID == nil || req.Status == nil || *req.Status == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	link := models.EventAttendance{
		EventID:    *req.EventID,
		AttendeeID: *req.AttendeeID,
		Status:     *req.Status,
	}
	if err := h.attendance.Create(c.Request.Context(), &link); err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to register for event")
		return
	}
	c.JSON(http.StatusOK, link)
}

type updateAttendanceRequest struct {
	ID *uint `json:"id"`
	models.EventAttendanceUpdate
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	var req updateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid attendance payload")
		return
	}
	if req.ID == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Attendance ID is required")
		return
	}

	link, err := h.attendance.Update(c.Request.Context(), *req.ID, req.EventAttendanceUpdate)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to update attendance record")
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Attendance ID is required")
		return
	}

	deleted, err := h.attendance.Delete(c.Request.Context(), *req.ID)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to delete attendance record")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Attendance record deleted successfully",
		"deletedRecord": deleted,
	})
}
