package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photostudio-backend/internal/models"
)

// StatsSource provides the aggregated counters behind the admin overview.
type StatsSource interface {
	DashboardStats() (*models.DashboardStats, error)
}

type DashboardHandler struct {
	stats StatsSource
}

func NewDashboardHandler(stats StatsSource) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// GetDashboard returns project, inquiry, review, and client counts plus
// paid-invoice revenue for the admin landing page.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	stats, err := h.stats.DashboardStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
