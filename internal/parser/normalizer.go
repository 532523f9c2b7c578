package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// Stats counts the per-row fallbacks applied during one batch. These
// are data-quality signals, not errors: rows are never rejected for an
// unparseable value.
type Stats struct {
	DatesDefaulted    int
	ScoresDefaulted   int
	StoresSynthesized int
}

// Normalizer transforms raw rows from one sheet into canonical NPS
// records. Column resolution happens once per sheet; rows are then
// pure lookups plus value normalization.
type Normalizer struct {
	headers []string
	columns map[string]string
	batch   string
	source  string
	now     func() time.Time
	stats   Stats
}

// NewNormalizer resolves the column mapping for one header row.
// batch is the import batch id used in synthesized ids; source labels
// where the data came from (e.g. "CSV Upload").
func NewNormalizer(headers []string, batch, source string) *Normalizer {
	return &Normalizer{
		headers: headers,
		columns: ResolveColumns(headers),
		batch:   batch,
		source:  source,
		now:     time.Now,
	}
}

// ColumnMapping returns the resolved logical-field → header mapping.
func (n *Normalizer) ColumnMapping() map[string]string {
	return n.columns
}

// Stats returns the fallback counters accumulated so far.
func (n *Normalizer) Stats() Stats {
	return n.stats
}

// Normalize transforms one raw row into a canonical record. Every
// fallback policy from the ingestion contract applies here: neutral
// score 5, current-timestamp date, "Unknown" dimensions, and a
// synthesized store id CSV-<batch>-<index> so every record has some
// store key for grouping.
func (n *Normalizer) Normalize(row map[string]string, index int) model.CanonicalRecord {
	now := n.now().UTC()

	score, scoreFound := n.scoreFromRow(row)
	if !scoreFound {
		n.stats.ScoresDefaulted++
	}

	date, dateOK := ParseDate(n.value(row, FieldResponseDate), now)
	if !dateOK {
		n.stats.DatesDefaulted++
	}

	storeCode := n.value(row, FieldStoreCode)
	if storeCode == "" {
		storeCode = fmt.Sprintf("CSV-%s-%d", n.batch, index)
		n.stats.StoresSynthesized++
	}

	storeName := n.value(row, FieldStoreName)
	if storeName == "" {
		storeName = fmt.Sprintf("Store %s", storeCode)
	}

	state := defaultIfEmpty(n.value(row, FieldState), UnknownValue)
	city := defaultIfEmpty(n.value(row, FieldCity), UnknownValue)
	region := CanonicalRegion(n.value(row, FieldRegion), n.value(row, FieldState))
	category := defaultIfEmpty(n.value(row, FieldCategory), "General")
	comments := n.value(row, FieldComments)

	return model.CanonicalRecord{
		ID:        fmt.Sprintf("csv_%s_%d", n.batch, index),
		StoreCode: storeCode,
		StoreName: storeName,
		State:     state,
		Region:    region,
		City:      city,
		Format:    n.value(row, FieldFormat),
		SubFormat: n.value(row, FieldSubFormat),

		NPSScore:    score,
		NPSCategory: model.CategoryFor(score),

		ResponseDate: date,
		UploadDate:   now,

		Comments:      comments,
		Category:      category,
		CustomerName:  defaultIfEmpty(n.value(row, FieldCustomerName), "Anonymous"),
		CustomerEmail: n.value(row, FieldCustomerEmail),
		CustomerPhone: n.value(row, FieldCustomerPhone),

		Source:  n.source,
		RawData: row,

		Normalized: model.Normalized{
			StoreCode:    storeCode,
			StoreName:    storeName,
			State:        state,
			Region:       region,
			City:         city,
			NPS:          score,
			ResponseDate: date,
			Comments:     comments,
			Category:     category,
			Timestamp:    now,
		},
	}
}

// scoreFromRow extracts the NPS score via the score-column fallback
// chain: direct rating, then likelihood-to-recommend, then
// recommendation. Only the recommendation column is treated as a
// possible five-point scale; everywhere else a "4" means 4/10.
func (n *Normalizer) scoreFromRow(row map[string]string) (int, bool) {
	if raw := n.value(row, FieldRating); raw != "" {
		if v, ok := parseNumeric(raw); ok {
			return scaleScore(v, false), true
		}
	}
	if raw := n.value(row, FieldLikelihoodToRecommend); raw != "" {
		if v, ok := parseNumeric(raw); ok {
			return scaleScore(v, false), true
		}
	}
	if raw := n.value(row, FieldRecommendation); raw != "" {
		if v, ok := parseNumeric(raw); ok {
			return scaleScore(v, true), true
		}
	}
	return NeutralScore, false
}

// value reads the resolved column for a logical field from one row.
func (n *Normalizer) value(row map[string]string, field string) string {
	header := n.columns[field]
	if header == "" {
		return ""
	}
	return strings.TrimSpace(row[header])
}

func defaultIfEmpty(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
