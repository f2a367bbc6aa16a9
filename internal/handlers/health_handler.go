package handlers

import (
	"net/http"

	"github.com/bradycon/gatherpoint/internal/helpers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database unavailable")
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
