package handlers

import (
	"context"
	"net/http"

	"github.com/bradycon/gatherpoint/internal/helpers"
	"github.com/bradycon/gatherpoint/internal/models"
	"github.com/gin-gonic/gin"
)

type IEventRepo interface {
	List(ctx context.Context) ([]models.Event, error)
	ListFrom(ctx context.Context, fromDate string) ([]models.Event, error)
	ListUpcoming(ctx context.Context, fromDate string, limit int) ([]models.Event, error)
	Get(ctx context.Context, id uint) (models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, id uint, update models.EventUpdate) (models.Event, error)
	Delete(ctx context.Context, id uint) error
}

// EventHandler serves the admin event CRUD endpoints.
type EventHandler struct {
	events IEventRepo
}

func NewEventHandler(events IEventRepo) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// Create is deliberately permissive: the admin form is free to save drafts
// with any subset of fields filled in.
func (h *EventHandler) Create(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event payload")
		return
	}
	event.ID = 0

	if err := h.events.Create(c.Request.Context(), &event); err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusOK, event)
}

type updateEventRequest struct {
	ID *uint `json:"id"`
	models.EventUpdate
}

func (h *EventHandler) Update(c *gin.Context) {
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event payload")
		return
	}
	if req.ID == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Event ID is required")
		return
	}

	event, err := h.events.Update(c.Request.Context(), *req.ID, req.EventUpdate)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, event)
}

type deleteRequest struct {
	ID *uint `json:"id"`
}

func (h *EventHandler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Event ID is required")
		return
	}

	if err := h.events.Delete(c.Request.Context(), *req.ID); err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
