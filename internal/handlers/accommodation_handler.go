package handlers

import (
	"context"
	"net/http"

	"github.com/bradycon/gatherpoint/internal/helpers"
	"github.com/bradycon/gatherpoint/internal/models"
	"github.com/gin-gonic/gin"
)

type IAccommodationRepo interface {
	List(ctx context.Context) ([]models.Accommodation, error)
	ListPublic(ctx context.Context) ([]models.Accommodation, error)
	Get(ctx context.Context, id uint) (models.Accommodation, error)
	Create(ctx context.Context, accommodation *models.Accommodation) error
	Update(ctx context.Context, id uint, update models.AccommodationUpdate) (models.Accommodation, error)
	Delete(ctx context.Context, id uint) error
}

// AccommodationHandler serves the admin accommodation CRUD endpoints.
type AccommodationHandler struct {
	accommodations IAccommodationRepo
}

func NewAccommodationHandler(accommodations IAccommodationRepo) *AccommodationHandler {
	return &AccommodationHandler{accommodations: accommodations}
}

func (h *AccommodationHandler) List(c *gin.Context) {
	accommodations, err := h.accommodations.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch accommodations")
		return
	}
	if accommodations == nil {
		accommodations = []models.Accommodation{}
	}
	c.JSON(http.StatusOK, accommodations)
}

func (h *AccommodationHandler) Create(c *gin.Context) {
	var accommodation models.Accommodation
	if err := c.ShouldBindJSON(&accommodation); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid accommodation payload")
		return
	}
	accommodation.ID = 0

	if err := h.accommodations.Create(c.Request.Context(), &accommodation); err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to create accommodation")
		return
	}
	c.JSON(http.StatusOK, accommodation)
}

type updateAccommodationRequest struct {
	ID *uint `json:"id"`
	models.AccommodationUpdate
}

func (h *AccommodationHandler) Update(c *gin.Context) {
	var req updateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid accommodation payload")
		return
	}
	if req.ID == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Accommodation ID is required")
		return
	}

	accommodation, err := h.accommodations.Update(c.Request.Context(), *req.ID, req.AccommodationUpdate)
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to update accommodation")
		return
	}
	c.JSON(http.StatusOK, accommodation)
}

func (h *AccommodationHandler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Accommodation ID is required")
		return
	}

	if err := h.accommodations.Delete(c.Request.Context(), *req.ID); err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to delete accommodation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Accommodation deleted successfully"})
}
