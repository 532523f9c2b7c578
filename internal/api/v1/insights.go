package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/calculator"
	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// InsightsResponse bundles anomaly detection, benchmark drops and
// comment mining over the current dataset.
type InsightsResponse struct {
	Success   bool                  `json:"success"`
	Anomalies []model.Anomaly       `json:"anomalies"`
	Drops     []model.BenchmarkDrop `json:"benchmarkDrops"`
	Reasons   model.Reasons         `json:"topReasons"`
}

// GetInsights computes anomalies, benchmark drops and top reasons.
// GET /api/nps/insights
func (h *Handler) GetInsights(c *gin.Context) {
	records := h.store.Records()
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "No data available. Please upload a CSV file first.",
		})
		return
	}

	resp := InsightsResponse{
		Success:   true,
		Anomalies: calculator.DetectAnomalies(records),
		Drops:     calculator.DetectBenchmarkDrops(records, time.Now().UTC()),
		Reasons:   calculator.TopReasons(records),
	}
	if resp.Anomalies == nil {
		resp.Anomalies = []model.Anomaly{}
	}
	if resp.Drops == nil {
		resp.Drops = []model.BenchmarkDrop{}
	}
	c.JSON(http.StatusOK, resp)
}

// GetTrend returns the NPS time series bucketed by day, week or month.
// GET /api/nps/trend?groupBy=day
func (h *Handler) GetTrend(c *gin.Context) {
	records := h.store.Records()
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "No data available. Please upload a CSV file first.",
		})
		return
	}

	groupBy := c.DefaultQuery("groupBy", calculator.ByDay)
	switch groupBy {
	case calculator.ByDay, calculator.ByWeek, calculator.ByMonth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "groupBy must be day, week or month"})
		return
	}

	points := calculator.TrendSeries(records, groupBy)
	if points == nil {
		points = []model.TrendPoint{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"groupBy": groupBy,
		"trend":   points,
	})
}
