package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Debug exposes the detected column mapping and date quality of the
// current dataset, for diagnosing a bad import without re-uploading.
// GET /api/nps/debug
func (h *Handler) Debug(c *gin.Context) {
	records := h.store.Records()
	meta := h.store.Meta()

	if len(records) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "No data available. Please upload a CSV file first.",
		})
		return
	}

	validDates := 0
	for _, r := range records {
		if !r.ResponseDate.IsZero() {
			validDates++
		}
	}

	sample := records
	if len(sample) > previewSize {
		sample = sample[:previewSize]
	}
	sampleDates := make([]gin.H, 0, len(sample))
	for _, r := range sample {
		sampleDates = append(sampleDates, gin.H{
			"storeCode": r.StoreCode,
			"state":     r.State,
			"npsScore":  r.NPSScore,
			"parsed":    r.ResponseDate,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"debug": gin.H{
			"totalRecords":          len(records),
			"recordsWithValidDates": validDates,
			"detectedColumns":       meta.ColumnMapping,
			"availableColumns":      meta.Columns,
			"sampleRecords":         sampleDates,
		},
	})
}
