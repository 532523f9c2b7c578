package calculator

import (
	"testing"
	"time"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

func TestDetectAnomalies_FlatSeries(t *testing.T) {
	t.Parallel()

	// Identical NPS every day: standard deviation is zero, so nothing
	// may be flagged.
	var records []model.CanonicalRecord
	for d := 0; d < 10; d++ {
		date := time.Date(2024, 5, 1+d, 0, 0, 0, 0, time.UTC)
		records = append(records, rec("S001", "Karnataka", 9, date))
	}

	if got := DetectAnomalies(records); len(got) != 0 {
		t.Fatalf("flat series must yield no anomalies, got %+v", got)
	}
}

func TestDetectAnomalies_Outlier(t *testing.T) {
	t.Parallel()

	// Nine steady days at NPS 100 and one crash day at -100. The crash
	// day sits well past two standard deviations from the mean.
	var records []model.CanonicalRecord
	for d := 0; d < 9; d++ {
		date := time.Date(2024, 5, 1+d, 0, 0, 0, 0, time.UTC)
		records = append(records, rec("S001", "Karnataka", 9, date))
	}
	crash := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	records = append(records, rec("S001", "Karnataka", 1, crash))

	got := DetectAnomalies(records)
	if len(got) != 1 {
		t.Fatalf("want 1 anomaly, got %+v", got)
	}
	a := got[0]
	if a.StoreCode != "S001" || a.Day != "2024-05-10" || a.NPS != -100 {
		t.Fatalf("anomaly: %+v", a)
	}
	if a.ZScore > -2 {
		t.Fatalf("z-score should be at or below -2, got %v", a.ZScore)
	}
}

func TestDetectAnomalies_SingleDay(t *testing.T) {
	t.Parallel()

	records := []model.CanonicalRecord{
		rec("S001", "Karnataka", 9, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	}
	if got := DetectAnomalies(records); len(got) != 0 {
		t.Fatalf("single day has no deviation to measure, got %+v", got)
	}
}
