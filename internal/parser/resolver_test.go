package parser

import "testing"

func TestResolveColumn_PriorityOrder(t *testing.T) {
	t.Parallel()

	// Both an exact alias and a lower-priority one are present; the
	// higher-priority alias must win regardless of header order.
	headers := []string{"NPS Score", "Rating"}
	if got := ResolveColumn(headers, FieldRating); got != "Rating" {
		t.Fatalf("want Rating, got %q", got)
	}
}

func TestResolveColumn_CaseInsensitive(t *testing.T) {
	t.Parallel()

	headers := []string{"  store code  ", "STATE"}
	if got := ResolveColumn(headers, FieldStoreCode); got != "  store code  " {
		t.Fatalf("want original header, got %q", got)
	}
	if got := ResolveColumn(headers, FieldState); got != "STATE" {
		t.Fatalf("want STATE, got %q", got)
	}
}

func TestResolveColumn_Absent(t *testing.T) {
	t.Parallel()

	headers := []string{"Foo", "Bar"}
	if got := ResolveColumn(headers, FieldRating); got != "" {
		t.Fatalf("want empty, got %q", got)
	}
	if got := ResolveColumn(headers, "no-such-field"); got != "" {
		t.Fatalf("unknown field should resolve to empty, got %q", got)
	}
}

func TestResolveColumns_AllFieldsPresent(t *testing.T) {
	t.Parallel()

	mapping := ResolveColumns([]string{"NPS Score", "Store Code", "Comments"})

	if mapping[FieldRating] != "NPS Score" {
		t.Fatalf("rating: %q", mapping[FieldRating])
	}
	if mapping[FieldStoreCode] != "Store Code" {
		t.Fatalf("storeCode: %q", mapping[FieldStoreCode])
	}
	if mapping[FieldComments] != "Comments" {
		t.Fatalf("comments: %q", mapping[FieldComments])
	}
	// Unresolved fields are present with an empty value.
	if v, ok := mapping[FieldState]; !ok || v != "" {
		t.Fatalf("state should be present and empty, got %q ok=%v", v, ok)
	}
}
