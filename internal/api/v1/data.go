package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// previewSize is how many records the current-data endpoint returns
// as a sample.
const previewSize = 5

// GetCurrentData reports the loaded dataset with a short preview.
// GET /api/nps/current-data
func (h *Handler) GetCurrentData(c *gin.Context) {
	records := h.store.Records()
	meta := h.store.Meta()

	preview := records
	if len(preview) > previewSize {
		preview = preview[:previewSize]
	}
	if preview == nil {
		preview = []model.CanonicalRecord{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"hasData":      len(records) > 0,
		"totalRecords": len(records),
		"metadata":     meta,
		"dataPreview":  preview,
	})
}

// ClearData drops the current dataset entirely.
// DELETE /api/nps/clear
func (h *Handler) ClearData(c *gin.Context) {
	if err := h.store.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data cleared successfully",
	})
}
