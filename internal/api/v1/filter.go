package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/calculator"
	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// FilterRequest carries the filter spec for a live re-filtering call.
type FilterRequest struct {
	Filters model.FilterSpec `json:"filters"`
}

// FilterResponse is the filtered record set plus its aggregates and
// per-dimension breakdowns.
type FilterResponse struct {
	Success         bool                        `json:"success"`
	Data            []model.CanonicalRecord     `json:"data"`
	Aggregates      model.Aggregates            `json:"aggregates"`
	StateBreakdown  map[string]model.Aggregates `json:"stateBreakdown"`
	StoreBreakdown  map[string]model.Aggregates `json:"storeBreakdown"`
	RegionBreakdown map[string]model.Aggregates `json:"regionBreakdown"`
	CityBreakdown   map[string]model.Aggregates `json:"cityBreakdown"`
	TotalRecords    int                         `json:"totalRecords"`
	LastUpdated     string                      `json:"lastUpdated,omitempty"`
}

// Filter applies a filter spec to the current dataset and recomputes
// the aggregates over the filtered subset.
// POST /api/nps/filter
func (h *Handler) Filter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid filter payload"})
		return
	}

	records := h.store.Records()
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "No data available. Please upload a CSV file first.",
		})
		return
	}

	filtered := calculator.ApplyFilters(records, req.Filters)

	resp := FilterResponse{
		Success:         true,
		Data:            filtered,
		Aggregates:      calculator.Aggregate(filtered),
		StateBreakdown:  calculator.BreakdownBy(filtered, calculator.DimState),
		StoreBreakdown:  calculator.BreakdownBy(filtered, calculator.DimStore),
		RegionBreakdown: calculator.BreakdownBy(filtered, calculator.DimRegion),
		CityBreakdown:   calculator.BreakdownBy(filtered, calculator.DimCity),
		TotalRecords:    len(filtered),
	}
	if meta := h.store.Meta(); !meta.LastUpdated.IsZero() {
		resp.LastUpdated = meta.LastUpdated.Format("2006-01-02T15:04:05Z07:00")
	}

	c.JSON(http.StatusOK, resp)
}
