package calculator

import (
	"sort"
	"strings"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// Options discovers the distinct values of every filterable dimension
// in the current record set, for populating UI dropdowns. Values are
// deduplicated case-insensitively (first-seen casing wins) and sorted
// case-insensitively.
func Options(records []model.CanonicalRecord) model.FilterOptions {
	opts := model.FilterOptions{
		States:     distinct(records, func(r model.CanonicalRecord) string { return dimValue(r.State) }),
		Cities:     distinct(records, func(r model.CanonicalRecord) string { return dimValue(r.City) }),
		Regions:    distinct(records, func(r model.CanonicalRecord) string { return dimValue(r.Region) }),
		Formats:    distinct(records, func(r model.CanonicalRecord) string { return r.Format }),
		SubFormats: distinct(records, func(r model.CanonicalRecord) string { return r.SubFormat }),
		Stores:     storeOptions(records),
	}

	for _, r := range records {
		t := r.ResponseDate
		if opts.DateRange.From == nil || t.Before(*opts.DateRange.From) {
			from := t
			opts.DateRange.From = &from
		}
		if opts.DateRange.To == nil || t.After(*opts.DateRange.To) {
			to := t
			opts.DateRange.To = &to
		}
	}
	return opts
}

// dimValue hides the "Unknown" placeholder from dropdowns.
func dimValue(v string) string {
	if v == "Unknown" {
		return ""
	}
	return v
}

func distinct(records []model.CanonicalRecord, get func(model.CanonicalRecord) string) []string {
	seen := make(map[string]string)
	for _, r := range records {
		v := strings.TrimSpace(get(r))
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; !ok {
			seen[key] = v
		}
	}
	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

func storeOptions(records []model.CanonicalRecord) []model.StoreOption {
	seen := make(map[string]model.StoreOption)
	for _, r := range records {
		if r.StoreCode == "" {
			continue
		}
		if _, ok := seen[r.StoreCode]; !ok {
			name := r.StoreName
			if name == "" {
				name = r.StoreCode
			}
			seen[r.StoreCode] = model.StoreOption{Code: r.StoreCode, Name: name}
		}
	}
	out := make([]model.StoreOption, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out
}
