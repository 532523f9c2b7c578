package calculator

import (
	"testing"
	"time"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

func filterFixture() []model.CanonicalRecord {
	r1 := rec("S001", "Karnataka", 9, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	r1.Region = "South"
	r1.City = "Bengaluru"
	r1.Comments = "Great service and friendly staff"

	r2 := rec("S002", "Delhi", 3, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))
	r2.Region = "North"
	r2.City = "New Delhi"
	r2.Comments = "Billing took forever"

	r3 := rec("S003", "Karnataka", 7, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	r3.Region = "South"
	r3.City = "Mysuru"

	return []model.CanonicalRecord{r1, r2, r3}
}

func TestApplyFilters_EmptySpecIdentity(t *testing.T) {
	t.Parallel()

	records := filterFixture()
	got := ApplyFilters(records, model.FilterSpec{})
	if len(got) != len(records) {
		t.Fatalf("empty spec should return everything, got %d", len(got))
	}
}

func TestApplyFilters_Idempotent(t *testing.T) {
	t.Parallel()

	spec := model.FilterSpec{State: "Karnataka"}
	once := ApplyFilters(filterFixture(), spec)
	twice := ApplyFilters(once, spec)
	if len(once) != len(twice) {
		t.Fatalf("filtering twice changed the result: %d vs %d", len(once), len(twice))
	}
}

func TestApplyFilters_StateCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := ApplyFilters(filterFixture(), model.FilterSpec{State: "karnataka"})
	if len(got) != 2 {
		t.Fatalf("want 2, got %d", len(got))
	}
	for _, r := range got {
		if r.State != "Karnataka" {
			t.Fatalf("unexpected record: %+v", r)
		}
	}
}

func TestApplyFilters_AllSentinel(t *testing.T) {
	t.Parallel()

	got := ApplyFilters(filterFixture(), model.FilterSpec{State: "all", Region: "all"})
	if len(got) != 3 {
		t.Fatalf("\"all\" should match everything, got %d", len(got))
	}
}

func TestApplyFilters_DateRange(t *testing.T) {
	t.Parallel()

	got := ApplyFilters(filterFixture(), model.FilterSpec{
		DateFrom: "2024-02-01",
		DateTo:   "2024-02-28",
	})
	if len(got) != 1 || got[0].StoreCode != "S002" {
		t.Fatalf("want only S002, got %+v", got)
	}

	// Bounds are inclusive of the whole day.
	got = ApplyFilters(filterFixture(), model.FilterSpec{
		DateFrom: "2024-01-10",
		DateTo:   "2024-01-10",
	})
	if len(got) != 1 || got[0].StoreCode != "S001" {
		t.Fatalf("boundary day should be included, got %+v", got)
	}
}

func TestApplyFilters_StoreNoSubstring(t *testing.T) {
	t.Parallel()

	got := ApplyFilters(filterFixture(), model.FilterSpec{StoreNo: "s00"})
	if len(got) != 3 {
		t.Fatalf("substring match on store number: got %d", len(got))
	}
	got = ApplyFilters(filterFixture(), model.FilterSpec{StoreNo: "002"})
	if len(got) != 1 || got[0].StoreCode != "S002" {
		t.Fatalf("got %+v", got)
	}
}

func TestApplyFilters_SearchText(t *testing.T) {
	t.Parallel()

	got := ApplyFilters(filterFixture(), model.FilterSpec{SearchText: "BILLING"})
	if len(got) != 1 || got[0].StoreCode != "S002" {
		t.Fatalf("got %+v", got)
	}
}

func TestApplyFilters_NPSCategory(t *testing.T) {
	t.Parallel()

	got := ApplyFilters(filterFixture(), model.FilterSpec{NPSCategory: model.Promoter})
	if len(got) != 1 || got[0].NPSScore != 9 {
		t.Fatalf("got %+v", got)
	}
}

func TestApplyFilters_Combined(t *testing.T) {
	t.Parallel()

	got := ApplyFilters(filterFixture(), model.FilterSpec{
		State:  "Karnataka",
		Region: "South",
		City:   "Mysuru",
	})
	if len(got) != 1 || got[0].StoreCode != "S003" {
		t.Fatalf("got %+v", got)
	}
}
