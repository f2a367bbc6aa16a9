package handlers

import (
	"context"
	"net/http"

	"github.com/bradycon/gatherpoint/internal/helpers"
	"github.com/bradycon/gatherpoint/internal/repository"
	"github.com/gin-gonic/gin"
)

type IStatsRepo interface {
	Counts(ctx context.Context) (repository.Stats, error)
}

type StatsHandler struct {
	stats IStatsRepo
}

func NewStatsHandler(stats IStatsRepo) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.stats.Counts(c.Request.Context())
	if err != nil {
		helpers.RespondWithRepoError(c, err, "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
