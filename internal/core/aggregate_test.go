package core

import "testing"

func row(category, value string) RawRecord {
	return RawRecord{Category: category, Value: value}
}

func TestSummarize_GroupsAndSums(t *testing.T) {
	rows := []RawRecord{
		row("A", "100"),
		row("B", "150"),
		row("A", "200"),
		row("C", "50"),
		row("B", "120"),
		row("A", "300"),
		row("C", "80"),
	}
	rs := BuildRecordSet(rows)
	if rs.Dropped != 0 {
		t.Fatalf("dropped %d rows, want 0", rs.Dropped)
	}
	agg := Summarize(rs)
	if agg.Len() != 3 {
		t.Fatalf("got %d categories, want 3", agg.Len())
	}
	expect := map[string]int64{"A": 60000, "B": 27000, "C": 13000}
	for cat, cents := range expect {
		got, ok := agg.Get(cat)
		if !ok || got.Cents != cents {
			t.Fatalf("%s: got %d (present=%v), want %d", cat, got.Cents, ok, cents)
		}
	}
	if agg.GrandTotal().Cents != 100000 {
		t.Fatalf("grand total %d, want 100000", agg.GrandTotal().Cents)
	}
}

func TestBuildRecordSet_DropsInvalidValues(t *testing.T) {
	rows := []RawRecord{
		row("A", "100"),
		row("A", "abc"), // non-numeric: excluded, not zero
		row("A", ""),    // blank: excluded, not zero
		row("B", "50"),
	}
	rs := BuildRecordSet(rows)
	if rs.Dropped != 2 {
		t.Fatalf("dropped %d rows, want 2", rs.Dropped)
	}
	agg := Summarize(rs)
	if got, _ := agg.Get("A"); got.Cents != 10000 {
		t.Fatalf("A: got %d, want 10000", got.Cents)
	}
	if got, _ := agg.Get("B"); got.Cents != 5000 {
		t.Fatalf("B: got %d, want 5000", got.Cents)
	}
}

func TestSummarize_CategoryEqualityIsExact(t *testing.T) {
	rows := []RawRecord{
		row("Food", "10"),
		row("food", "20"),
		row(" Food", "30"),
	}
	agg := Summarize(BuildRecordSet(rows))
	if agg.Len() != 3 {
		t.Fatalf("got %d categories, want 3 (no case folding or trimming)", agg.Len())
	}
}

func TestSummarize_Empty(t *testing.T) {
	agg := Summarize(BuildRecordSet(nil))
	if agg.Len() != 0 {
		t.Fatalf("got %d categories, want 0", agg.Len())
	}
	if _, ok := agg.Get("anything"); ok {
		t.Fatal("empty aggregation should have no categories")
	}
}

func TestSummarize_TotalsSortedByCategory(t *testing.T) {
	rows := []RawRecord{row("zeta", "1"), row("alpha", "2"), row("mid", "3")}
	agg := Summarize(BuildRecordSet(rows))
	want := []string{"alpha", "mid", "zeta"}
	for i, w := range want {
		if agg.Totals[i].Category != w {
			t.Fatalf("position %d: got %q, want %q", i, agg.Totals[i].Category, w)
		}
	}
}

func TestBuildRecordSet_ParsesOptionalDate(t *testing.T) {
	rows := []RawRecord{{Category: "A", Value: "1", Date: "2025-03-09"}}
	rs := BuildRecordSet(rows)
	if len(rs.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(rs.Records))
	}
	if rs.Records[0].Date.IsZero() {
		t.Fatal("expected date to be parsed")
	}
	// A garbled date never drops a row; the field is informational only.
	rs = BuildRecordSet([]RawRecord{{Category: "A", Value: "1", Date: "not-a-date"}})
	if len(rs.Records) != 1 || rs.Dropped != 0 {
		t.Fatalf("garbled date must not drop the row: %+v", rs)
	}
}

func TestSummarize_NegativeValues(t *testing.T) {
	rows := []RawRecord{row("A", "10"), row("A", "-2.5")}
	agg := Summarize(BuildRecordSet(rows))
	if got, _ := agg.Get("A"); got.Cents != 750 {
		t.Fatalf("A: got %d, want 750", got.Cents)
	}
}
