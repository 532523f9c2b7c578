package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/calculator"
	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/exporter"
)

// Export downloads the filtered record set as CSV or XLSX.
// POST /api/nps/export?format=csv|xlsx
func (h *Handler) Export(c *gin.Context) {
	records := h.store.Records()
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "No data to export",
		})
		return
	}

	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid filter payload"})
		return
	}
	filtered := calculator.ApplyFilters(records, req.Filters)

	stamp := time.Now().UTC().Format("2006-01-02")
	var buf bytes.Buffer

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		if err := exporter.WriteXLSX(&buf, filtered); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		filename := fmt.Sprintf("nps-data-%s.xlsx", stamp)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	case "csv":
		if err := exporter.WriteCSV(&buf, filtered); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		filename := fmt.Sprintf("nps-data-%s.csv", stamp)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "format must be csv or xlsx"})
	}
}
