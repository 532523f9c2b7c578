package importer

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// urlFetchTimeout bounds a remote CSV download.
const urlFetchTimeout = 30 * time.Second

// maxRemoteSize caps a remote CSV body at 50 MB.
const maxRemoteSize = 50 << 20

// ImportFromURL fetches a CSV from a URL and imports it. Fetch
// failures come back as a structured failure result with a timestamp,
// never as a panic or bare error, so the UI can render them inline.
func (c *Coordinator) ImportFromURL(rawURL string) model.ImportResult {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return failResult(fmt.Sprintf("invalid URL: %s", rawURL))
	}

	client := &http.Client{Timeout: urlFetchTimeout}
	resp, err := client.Get(rawURL)
	if err != nil {
		return failResult(fmt.Sprintf("failed to fetch CSV from URL: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failResult(fmt.Sprintf("failed to fetch CSV from URL: status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize))
	if err != nil {
		return failResult(fmt.Sprintf("failed to read CSV body: %v", err))
	}

	return c.ImportSync(body, Options{
		Filename: u.Path,
		Source:   "CSV URL Import",
	})
}

func failResult(msg string) model.ImportResult {
	return model.ImportResult{
		Success:   false,
		Error:     msg,
		Timestamp: time.Now().UTC(),
	}
}
