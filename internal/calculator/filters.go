package calculator

import (
	"strings"
	"time"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// ApplyFilters returns the subset of records matching every present
// predicate. Predicates are AND-combined and run date range first,
// then categorical equality, then substring matches, then the NPS
// category bucket. A record missing a queried dimension simply fails
// that predicate. An empty spec returns the input unchanged.
func ApplyFilters(records []model.CanonicalRecord, spec model.FilterSpec) []model.CanonicalRecord {
	if spec.IsEmpty() {
		return records
	}

	from, hasFrom := parseFilterDate(spec.DateFrom, false)
	to, hasTo := parseFilterDate(spec.DateTo, true)

	out := make([]model.CanonicalRecord, 0, len(records))
	for _, r := range records {
		if hasFrom && r.ResponseDate.Before(from) {
			continue
		}
		if hasTo && r.ResponseDate.After(to) {
			continue
		}
		if !matchDim(spec.State, r.State) {
			continue
		}
		if !matchDim(spec.City, r.City) {
			continue
		}
		if !matchDim(spec.Region, r.Region) {
			continue
		}
		if !matchDim(spec.StoreCode, r.StoreCode) {
			continue
		}
		if !matchDim(spec.Format, r.Format) {
			continue
		}
		if !matchDim(spec.SubFormat, r.SubFormat) {
			continue
		}
		if spec.StoreNo != "" && !strings.Contains(strings.ToLower(r.StoreCode), strings.ToLower(spec.StoreNo)) {
			continue
		}
		if !matchSearchText(spec.SearchText, r) {
			continue
		}
		if spec.NPSCategory != "" && spec.NPSCategory != model.FilterAll && r.NPSCategory != spec.NPSCategory {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchDim is a case-insensitive equality check, skipped when the
// filter value is empty or the "all" sentinel.
func matchDim(want, got string) bool {
	if want == "" || want == model.FilterAll {
		return true
	}
	return strings.EqualFold(want, got)
}

// matchSearchText does a case-insensitive substring search over the
// free-text fields: comments, customer name and store name.
func matchSearchText(search string, r model.CanonicalRecord) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(r.Comments), needle) ||
		strings.Contains(strings.ToLower(r.CustomerName), needle) ||
		strings.Contains(strings.ToLower(r.StoreName), needle)
}

// parseFilterDate parses a filter bound and widens it to cover the
// whole calendar day: 00:00:00 for the lower bound, 23:59:59.999 for
// the upper.
func parseFilterDate(raw string, endOfDay bool) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	var t time.Time
	var err error
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err = time.Parse(layout, s); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, false
	}
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if endOfDay {
		return day.Add(24*time.Hour - time.Millisecond), true
	}
	return day, true
}
