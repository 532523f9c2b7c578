package calculator

import (
	"math"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// Grouping dimensions accepted by BreakdownBy.
const (
	DimStore    = "store"
	DimState    = "state"
	DimRegion   = "region"
	DimCity     = "city"
	DimCategory = "category"
)

// Aggregate computes the NPS summary over a record set. An empty set
// yields all-zero counts and an NPS of 0, never a division by zero.
func Aggregate(records []model.CanonicalRecord) model.Aggregates {
	var agg model.Aggregates
	agg.TotalResponses = len(records)
	if agg.TotalResponses == 0 {
		return agg
	}

	sum := 0
	for _, r := range records {
		sum += r.NPSScore
		switch r.NPSCategory {
		case model.Promoter:
			agg.Promoters++
		case model.Passive:
			agg.Passives++
		default:
			agg.Detractors++
		}
	}

	total := float64(agg.TotalResponses)
	agg.NPSScore = int(math.Round(100 * float64(agg.Promoters-agg.Detractors) / total))
	agg.AverageScore = math.Round(float64(sum)/total*10) / 10
	agg.PromoterPercent = int(math.Round(100 * float64(agg.Promoters) / total))
	agg.PassivePercent = int(math.Round(100 * float64(agg.Passives) / total))
	agg.DetractorPercent = int(math.Round(100 * float64(agg.Detractors) / total))
	return agg
}

// BreakdownBy groups records by one dimension and aggregates each
// group. Unknown dimensions yield a single "Unknown"-keyed group for
// records with nothing to group on.
func BreakdownBy(records []model.CanonicalRecord, dimension string) map[string]model.Aggregates {
	groups := groupBy(records, dimension)
	out := make(map[string]model.Aggregates, len(groups))
	for key, rs := range groups {
		out[key] = Aggregate(rs)
	}
	return out
}

func groupBy(records []model.CanonicalRecord, dimension string) map[string][]model.CanonicalRecord {
	groups := make(map[string][]model.CanonicalRecord)
	for _, r := range records {
		key := dimensionKey(r, dimension)
		groups[key] = append(groups[key], r)
	}
	return groups
}

func dimensionKey(r model.CanonicalRecord, dimension string) string {
	var key string
	switch dimension {
	case DimStore:
		key = r.StoreCode
	case DimState:
		key = r.State
	case DimRegion:
		key = r.Region
	case DimCity:
		key = r.City
	case DimCategory:
		key = r.Category
	}
	if key == "" {
		key = "Unknown"
	}
	return key
}
