package handlers

import (
	"net/http"
	"time"

	"cakehouse-pos/internal/database"

	"github.com/gin-gonic/gin"
)

// GET /api/stats - today's numbers for the dashboard cards
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := database.GetDailyStats(h.DB, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/reports/sales - trailing 7 days for the chart
func (h *Handler) GetSalesReport(c *gin.Context) {
	points, err := database.GetWeeklySales(h.DB, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales report"})
		return
	}
	c.JSON(http.StatusOK, points)
}
