package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/importer"
	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/store"
)

// Handler is the v1 API handler set.
type Handler struct {
	store       *store.Store
	coordinator *importer.Coordinator
	log         *zap.Logger
	maxUploadMB int
}

// NewHandler creates the v1 API handler set.
func NewHandler(st *store.Store, log *zap.Logger, maxUploadMB int) *Handler {
	if maxUploadMB <= 0 {
		maxUploadMB = 10
	}
	return &Handler{
		store:       st,
		coordinator: importer.NewCoordinator(st, log),
		log:         log,
		maxUploadMB: maxUploadMB,
	}
}

// RegisterRoutes registers the v1 API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	nps := router.Group("/nps")
	{
		// System state
		nps.GET("/status", h.GetStatus)
		nps.GET("/current-data", h.GetCurrentData)
		nps.DELETE("/clear", h.ClearData)

		// Ingestion
		nps.POST("/upload", h.Upload)
		nps.POST("/upload-batch", h.UploadBatch)
		nps.POST("/upload-url", h.UploadFromURL)

		// Filtering and aggregation
		nps.POST("/filter", h.Filter)
		nps.GET("/filter-options", h.GetFilterOptions)

		// Analytics
		nps.GET("/insights", h.GetInsights)
		nps.GET("/trend", h.GetTrend)

		// Export and introspection
		nps.POST("/export", h.Export)
		nps.GET("/debug", h.Debug)
	}
}

func (h *Handler) maxUploadBytes() int64 {
	return int64(h.maxUploadMB) << 20
}
