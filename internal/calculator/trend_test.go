package calculator

import (
	"testing"
	"time"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

func TestTrendSeries_Daily(t *testing.T) {
	t.Parallel()

	records := []model.CanonicalRecord{
		rec("S1", "Karnataka", 9, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)),
		rec("S1", "Karnataka", 2, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		rec("S1", "Karnataka", 9, time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)),
	}

	points := TrendSeries(records, ByDay)
	if len(points) != 2 {
		t.Fatalf("want 2 buckets, got %+v", points)
	}
	if points[0].Bucket != "2024-05-01" || points[1].Bucket != "2024-05-02" {
		t.Fatalf("buckets should sort ascending: %+v", points)
	}
	if points[0].NPSScore != -100 {
		t.Fatalf("day 1: %+v", points[0])
	}
	if points[1].NPSScore != 100 || points[1].Responses != 2 {
		t.Fatalf("day 2: %+v", points[1])
	}
}

func TestTrendSeries_Monthly(t *testing.T) {
	t.Parallel()

	records := []model.CanonicalRecord{
		rec("S1", "Karnataka", 9, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)),
		rec("S1", "Karnataka", 9, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	}

	points := TrendSeries(records, ByMonth)
	if len(points) != 2 {
		t.Fatalf("got %+v", points)
	}
	if points[0].Bucket != "2024-04" || points[1].Bucket != "2024-05" {
		t.Fatalf("month keys: %+v", points)
	}
}

func TestTrendSeries_WeekStartsSunday(t *testing.T) {
	t.Parallel()

	// 2024-05-08 is a Wednesday; its week starts Sunday 2024-05-05.
	records := []model.CanonicalRecord{
		rec("S1", "Karnataka", 9, time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)),
	}
	points := TrendSeries(records, ByWeek)
	if len(points) != 1 || points[0].Bucket != "2024-05-05" {
		t.Fatalf("got %+v", points)
	}
}

func TestTrendSeries_Empty(t *testing.T) {
	t.Parallel()

	if points := TrendSeries(nil, ByDay); points != nil {
		t.Fatalf("got %+v", points)
	}
}
