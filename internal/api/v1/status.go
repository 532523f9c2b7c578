package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// StatusResponse describes the system state.
type StatusResponse struct {
	Initialized  bool                 `json:"initialized"`
	TotalRecords int                  `json:"totalRecords"`
	Source       string               `json:"source,omitempty"`
	BatchID      string               `json:"batchId,omitempty"`
	LastUpdated  *time.Time           `json:"lastUpdated,omitempty"`
	Imports      []model.ImportReport `json:"imports,omitempty"`
}

// GetStatus reports whether data is loaded and the recent import
// history.
// GET /api/nps/status
func (h *Handler) GetStatus(c *gin.Context) {
	meta := h.store.Meta()
	count := h.store.Count()

	resp := StatusResponse{
		Initialized:  count > 0,
		TotalRecords: count,
		Source:       meta.Source,
		BatchID:      meta.BatchID,
	}
	if !meta.LastUpdated.IsZero() {
		t := meta.LastUpdated
		resp.LastUpdated = &t
	}

	if history, err := h.store.ImportHistory(5); err == nil {
		resp.Imports = history
	}

	c.JSON(http.StatusOK, resp)
}
