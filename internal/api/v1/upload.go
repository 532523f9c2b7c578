package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/importer"
)

// Upload imports one CSV/XLSX file and streams progress as SSE.
// POST /api/nps/upload
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no file uploaded"})
		return
	}
	if file.Size > h.maxUploadBytes() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("file exceeds %d MB limit", h.maxUploadMB),
		})
		return
	}

	content, err := readUpload(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to read upload"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "streaming unsupported"})
		return
	}

	progress := h.coordinator.Import(content, importer.Options{
		Filename: file.Filename,
		Source:   "CSV Upload",
	})
	for event := range progress {
		payload, err := json.Marshal(event)
		if err != nil {
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

// UploadBatch imports several files merged into one dataset.
// POST /api/nps/upload-batch
func (h *Handler) UploadBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid form data"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no files uploaded"})
		return
	}

	var (
		contents  [][]byte
		filenames []string
	)
	for _, f := range files {
		if f.Size > h.maxUploadBytes() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("%s exceeds %d MB limit", f.Filename, h.maxUploadMB),
			})
			return
		}
		content, err := readUpload(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to read upload"})
			return
		}
		contents = append(contents, content)
		filenames = append(filenames, f.Filename)
	}

	result := h.coordinator.ImportMany(contents, filenames, "CSV Batch Upload")
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UploadFromURL fetches and imports a remote CSV.
// POST /api/nps/upload-url
func (h *Handler) UploadFromURL(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "URL is required",
			"timestamp": time.Now().UTC(),
		})
		return
	}

	result := h.coordinator.ImportFromURL(req.URL)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
