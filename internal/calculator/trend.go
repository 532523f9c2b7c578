package calculator

import (
	"sort"
	"time"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// Trend bucket granularities.
const (
	ByDay   = "day"
	ByWeek  = "week"
	ByMonth = "month"
)

// TrendSeries buckets records by response date and computes the NPS of
// each bucket, sorted by bucket key. Weeks start on Sunday.
func TrendSeries(records []model.CanonicalRecord, groupBy string) []model.TrendPoint {
	if len(records) == 0 {
		return nil
	}

	buckets := make(map[string][]model.CanonicalRecord)
	for _, r := range records {
		key := bucketKey(r.ResponseDate, groupBy)
		buckets[key] = append(buckets[key], r)
	}

	points := make([]model.TrendPoint, 0, len(buckets))
	for key, rs := range buckets {
		agg := Aggregate(rs)
		points = append(points, model.TrendPoint{
			Bucket:     key,
			NPSScore:   agg.NPSScore,
			Responses:  agg.TotalResponses,
			Promoters:  agg.Promoters,
			Passives:   agg.Passives,
			Detractors: agg.Detractors,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Bucket < points[j].Bucket
	})
	return points
}

func bucketKey(t time.Time, groupBy string) string {
	t = t.UTC()
	switch groupBy {
	case ByWeek:
		weekStart := t.AddDate(0, 0, -int(t.Weekday()))
		return weekStart.Format("2006-01-02")
	case ByMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}
