package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/parser"
	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/store"
)

// Coordinator drives one import end to end: parse the raw sheet,
// normalize every row, validate the result and replace the current
// dataset. Parsing-stage failures abort the whole import and leave the
// previous dataset untouched; per-row issues become counted fallbacks.
type Coordinator struct {
	store *store.Store
	log   *zap.Logger
}

// NewCoordinator creates an import coordinator.
func NewCoordinator(st *store.Store, log *zap.Logger) *Coordinator {
	return &Coordinator{store: st, log: log}
}

// Options control one import batch.
type Options struct {
	Filename string // original filename, drives CSV vs XLSX detection
	Source   string // source label stored on every record
}

// ProgressEvent is one step of a streaming import.
// Type is one of start/parse/normalize/done/error.
type ProgressEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Import runs an import in the background and returns its progress
// channel. The channel is closed after the done or error event.
func (c *Coordinator) Import(content []byte, opts Options) <-chan ProgressEvent {
	progress := make(chan ProgressEvent, 16)
	go func() {
		defer close(progress)
		c.doImport(content, opts, progress)
	}()
	return progress
}

// ImportSync runs an import synchronously and returns the structured
// result. Failures are reported in the result, not as an error, so
// callers can surface them inline.
func (c *Coordinator) ImportSync(content []byte, opts Options) model.ImportResult {
	var result model.ImportResult
	for event := range c.Import(content, opts) {
		switch event.Type {
		case "error":
			result = model.ImportResult{
				Success:   false,
				Error:     event.Message,
				Timestamp: event.Timestamp,
			}
		case "done":
			if r, ok := event.Data.(model.ImportResult); ok {
				result = r
			}
		}
	}
	return result
}

// ImportMany merges several files into one dataset and replaces the
// current one. Files that fail to parse are skipped with a warning;
// the import fails only if no file yields records.
func (c *Coordinator) ImportMany(contents [][]byte, filenames []string, source string) model.ImportResult {
	started := time.Now()
	batch := newBatchID()

	var (
		all      []model.CanonicalRecord
		warnings []string
		columns  []string
		mapping  map[string]string
		stats    parser.Stats
		total    int
	)

	for i, content := range contents {
		name := fmt.Sprintf("file-%d", i+1)
		if i < len(filenames) && filenames[i] != "" {
			name = filenames[i]
		}
		table, err := parseTable(content, name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		norm := parser.NewNormalizer(table.Headers, batch, source)
		for j, row := range table.Rows {
			all = append(all, norm.Normalize(row, total+j))
		}
		total += len(table.Rows)
		s := norm.Stats()
		stats.DatesDefaulted += s.DatesDefaulted
		stats.ScoresDefaulted += s.ScoresDefaulted
		stats.StoresSynthesized += s.StoresSynthesized
		if columns == nil {
			columns = table.Headers
			mapping = norm.ColumnMapping()
		}
	}

	if len(all) == 0 {
		msg := "no records imported"
		if len(warnings) > 0 {
			msg = fmt.Sprintf("no records imported: %s", strings.Join(warnings, "; "))
		}
		return model.ImportResult{Success: false, Error: msg, Timestamp: time.Now().UTC()}
	}

	report := c.buildReport(batch, strings.Join(filenames, ","), total, len(all), stats, warnings, started)
	if err := c.replaceDataset(all, batch, "CSV Batch Upload", columns, mapping, report); err != nil {
		return model.ImportResult{Success: false, Error: err.Error(), Timestamp: time.Now().UTC()}
	}

	return model.ImportResult{
		Success:       true,
		TotalRecords:  len(all),
		Columns:       columns,
		ColumnMapping: mapping,
		Report:        report,
		Timestamp:     time.Now().UTC(),
	}
}

func (c *Coordinator) doImport(content []byte, opts Options, progress chan<- ProgressEvent) {
	started := time.Now()
	batch := newBatchID()

	send(progress, "start", fmt.Sprintf("importing %s", displayName(opts.Filename)), map[string]string{
		"filename": displayName(opts.Filename),
		"batchId":  batch,
	})

	table, err := parseTable(content, opts.Filename)
	if err != nil {
		c.log.Warn("import failed at parse stage",
			zap.String("filename", opts.Filename), zap.Error(err))
		send(progress, "error", err.Error(), nil)
		return
	}

	send(progress, "parse", fmt.Sprintf("parsed %d rows, %d columns", len(table.Rows), len(table.Headers)), map[string]int{
		"rows":    len(table.Rows),
		"columns": len(table.Headers),
	})

	warnings := validateStructure(table)

	source := opts.Source
	if source == "" {
		source = "CSV Upload"
	}
	norm := parser.NewNormalizer(table.Headers, batch, source)
	records := make([]model.CanonicalRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		records = append(records, norm.Normalize(row, i))
		if (i+1)%1000 == 0 {
			send(progress, "normalize", fmt.Sprintf("normalized %d/%d rows", i+1, len(table.Rows)), nil)
		}
	}

	stats := norm.Stats()
	if stats.DatesDefaulted > 0 || stats.ScoresDefaulted > 0 {
		// Silent inaccuracy source; surface it in the log and report.
		c.log.Warn("fallback values applied during import",
			zap.String("batchId", batch),
			zap.Int("datesDefaulted", stats.DatesDefaulted),
			zap.Int("scoresDefaulted", stats.ScoresDefaulted),
			zap.Int("storesSynthesized", stats.StoresSynthesized))
	}

	report := c.buildReport(batch, displayName(opts.Filename), len(table.Rows), len(records), stats, warnings, started)
	if err := c.replaceDataset(records, batch, source, table.Headers, norm.ColumnMapping(), report); err != nil {
		send(progress, "error", err.Error(), nil)
		return
	}

	send(progress, "done", fmt.Sprintf("imported %d records", len(records)), model.ImportResult{
		Success:       true,
		TotalRecords:  len(records),
		Columns:       table.Headers,
		ColumnMapping: norm.ColumnMapping(),
		Report:        report,
		Timestamp:     time.Now().UTC(),
	})
}

func (c *Coordinator) replaceDataset(records []model.CanonicalRecord, batch, source string, columns []string, mapping map[string]string, report *model.ImportReport) error {
	meta := model.DatasetMeta{
		BatchID:       batch,
		Source:        source,
		Columns:       columns,
		ColumnMapping: mapping,
	}
	if err := c.store.Replace(records, meta); err != nil {
		return fmt.Errorf("failed to store dataset: %w", err)
	}
	if err := c.store.LogImport(*report); err != nil {
		c.log.Warn("failed to log import", zap.Error(err))
	}
	c.log.Info("dataset replaced",
		zap.String("batchId", batch),
		zap.Int("records", len(records)))
	return nil
}

func (c *Coordinator) buildReport(batch, filename string, totalRows, imported int, stats parser.Stats, warnings []string, started time.Time) *model.ImportReport {
	return &model.ImportReport{
		Filename:          filename,
		BatchID:           batch,
		TotalRows:         totalRows,
		Imported:          imported,
		DatesDefaulted:    stats.DatesDefaulted,
		ScoresDefaulted:   stats.ScoresDefaulted,
		StoresSynthesized: stats.StoresSynthesized,
		Warnings:          warnings,
		Duration:          time.Since(started),
		Timestamp:         time.Now().UTC(),
	}
}

// parseTable picks the reader by file extension; anything that is not
// .xlsx/.xls is treated as CSV text.
func parseTable(content []byte, filename string) (*parser.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return parser.ParseXLSX(bytes.NewReader(content))
	default:
		return parser.ParseCSV(bytes.NewReader(content))
	}
}

// validateStructure reports data-quality warnings on the parsed sheet.
// A missing score column is worth flagging loudly since every score
// will default to neutral 5.
func validateStructure(table *parser.Table) []string {
	var warnings []string
	if parser.ResolveColumn(table.Headers, parser.FieldRating) == "" &&
		parser.ResolveColumn(table.Headers, parser.FieldLikelihoodToRecommend) == "" &&
		parser.ResolveColumn(table.Headers, parser.FieldRecommendation) == "" {
		warnings = append(warnings, "no NPS score column found (NPS, NPS Score, Score, Rating): all scores default to 5")
	}
	if parser.ResolveColumn(table.Headers, parser.FieldStoreCode) == "" {
		warnings = append(warnings, "no store identifier column found (Store No., Store Code, etc.): store ids are synthesized")
	}
	if parser.ResolveColumn(table.Headers, parser.FieldResponseDate) == "" {
		warnings = append(warnings, "no response date column found: dates default to the import time")
	}
	return warnings
}

func send(progress chan<- ProgressEvent, eventType, message string, data interface{}) {
	progress <- ProgressEvent{
		Type:      eventType,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

func displayName(filename string) string {
	if filename == "" {
		return "upload.csv"
	}
	return filepath.Base(filename)
}

func newBatchID() string {
	return uuid.NewString()[:8]
}
