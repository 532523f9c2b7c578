package calculator

import (
	"math"
	"sort"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

// anomalyZThreshold flags daily NPS values two or more standard
// deviations away from the store's own daily mean.
const anomalyZThreshold = 2.0

// DetectAnomalies computes each store's daily NPS series and flags
// days whose z-score against that store's own mean and standard
// deviation reaches the threshold. A store with a zero standard
// deviation (for example fewer than two distinct days) produces no
// anomalies rather than flagging every day.
func DetectAnomalies(records []model.CanonicalRecord) []model.Anomaly {
	var anomalies []model.Anomaly

	stores := groupBy(records, DimStore)
	storeKeys := make([]string, 0, len(stores))
	for key := range stores {
		storeKeys = append(storeKeys, key)
	}
	sort.Strings(storeKeys)

	for _, store := range storeKeys {
		days := TrendSeries(stores[store], ByDay)
		if len(days) == 0 {
			continue
		}

		mean := 0.0
		for _, d := range days {
			mean += float64(d.NPSScore)
		}
		mean /= float64(len(days))

		variance := 0.0
		for _, d := range days {
			diff := float64(d.NPSScore) - mean
			variance += diff * diff
		}
		sd := math.Sqrt(variance / float64(len(days)))
		if sd == 0 {
			continue
		}

		for _, d := range days {
			z := (float64(d.NPSScore) - mean) / sd
			if math.Abs(z) >= anomalyZThreshold {
				anomalies = append(anomalies, model.Anomaly{
					StoreCode: store,
					Day:       d.Bucket,
					NPS:       d.NPSScore,
					ZScore:    math.Round(z*100) / 100,
					Responses: d.Responses,
				})
			}
		}
	}
	return anomalies
}
