package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/calculator"
	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// GetFilterOptions lists the distinct dimension values of the current
// dataset for UI dropdowns.
// GET /api/nps/filter-options
func (h *Handler) GetFilterOptions(c *gin.Context) {
	records := h.store.Records()
	if len(records) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success":    false,
			"states":     []string{},
			"cities":     []string{},
			"regions":    []string{},
			"stores":     []model.StoreOption{},
			"formats":    []string{},
			"subFormats": []string{},
			"dateRange":  model.DateRange{},
		})
		return
	}

	opts := calculator.Options(records)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"states":     opts.States,
		"cities":     opts.Cities,
		"regions":    opts.Regions,
		"stores":     opts.Stores,
		"formats":    opts.Formats,
		"subFormats": opts.SubFormats,
		"dateRange":  opts.DateRange,
	})
}
