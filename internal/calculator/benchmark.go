package calculator

import (
	"sort"
	"time"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// Thresholds for benchmark-drop detection. The minimum sample size
// gates out false alarms on low-volume groups and must not be
// loosened: a group with 19 responses in either window never appears
// in the drop list, whatever its delta.
const (
	dropWindow     = 30 * 24 * time.Hour
	dropMinSamples = 20
	dropThreshold  = -10
)

// DetectBenchmarkDrops compares the trailing 30-day NPS against the
// preceding 30-day NPS for every store, state and region, and flags
// groups where both windows have at least 20 responses and the NPS
// fell by 10 points or more.
func DetectBenchmarkDrops(records []model.CanonicalRecord, now time.Time) []model.BenchmarkDrop {
	currentFrom := now.Add(-dropWindow)
	previousFrom := now.Add(-2 * dropWindow)

	var drops []model.BenchmarkDrop
	for _, dim := range []string{DimStore, DimState, DimRegion} {
		groups := groupBy(records, dim)

		keys := make([]string, 0, len(groups))
		for key := range groups {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if key == "Unknown" {
				continue
			}
			var current, previous []model.CanonicalRecord
			for _, r := range groups[key] {
				switch {
				case inWindow(r.ResponseDate, currentFrom, now):
					current = append(current, r)
				case inWindow(r.ResponseDate, previousFrom, currentFrom):
					previous = append(previous, r)
				}
			}
			if len(current) < dropMinSamples || len(previous) < dropMinSamples {
				continue
			}
			cur := Aggregate(current)
			prev := Aggregate(previous)
			delta := cur.NPSScore - prev.NPSScore
			if delta <= dropThreshold {
				drops = append(drops, model.BenchmarkDrop{
					Dimension:         dim,
					Key:               key,
					CurrentNPS:        cur.NPSScore,
					PreviousNPS:       prev.NPSScore,
					Delta:             delta,
					CurrentResponses:  cur.TotalResponses,
					PreviousResponses: prev.TotalResponses,
				})
			}
		}
	}
	return drops
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
