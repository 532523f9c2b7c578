package model

import "time"

// ImportReport summarizes one import batch, including the per-row
// fallbacks that were applied instead of rejecting rows.
type ImportReport struct {
	Filename          string        `json:"filename"`
	BatchID           string        `json:"batchId"`
	TotalRows         int           `json:"totalRows"`
	Imported          int           `json:"imported"`
	DatesDefaulted    int           `json:"datesDefaulted"`
	ScoresDefaulted   int           `json:"scoresDefaulted"`
	StoresSynthesized int           `json:"storesSynthesized"`
	Warnings          []string      `json:"warnings,omitempty"`
	Duration          time.Duration `json:"duration"`
	Timestamp         time.Time     `json:"timestamp"`
}

// ImportResult is the structured outcome of an import attempt. Fetch
// and parse failures are surfaced here rather than thrown, so the UI
// can render an inline error without losing the previous dataset.
type ImportResult struct {
	Success       bool              `json:"success"`
	Error         string            `json:"error,omitempty"`
	TotalRecords  int               `json:"totalRecords"`
	Columns       []string          `json:"columns,omitempty"`
	ColumnMapping map[string]string `json:"columnMapping,omitempty"`
	Report        *ImportReport     `json:"report,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}

// DatasetMeta describes the currently loaded dataset.
type DatasetMeta struct {
	BatchID       string            `json:"batchId"`
	Source        string            `json:"source"`
	TotalRecords  int               `json:"totalRecords"`
	Columns       []string          `json:"columns,omitempty"`
	ColumnMapping map[string]string `json:"columnMapping,omitempty"`
	LastUpdated   time.Time         `json:"lastUpdated"`
}
