package core

import (
	"sort"
	"strings"
	"time"
)

// BuildRecordSet coerces raw rows into typed records. Rows whose Value
// field does not parse as a number are excluded and counted in Dropped;
// they contribute nothing to any sum. Category text is kept verbatim
// (case-sensitive, no trimming).
func BuildRecordSet(rows []RawRecord) RecordSet {
	rs := RecordSet{Records: make([]Record, 0, len(rows))}
	for _, row := range rows {
		cents, err := ParseValueToCents(row.Value)
		if err != nil {
			rs.Dropped++
			continue
		}
		rec := Record{Category: row.Category, Value: Money{Cents: cents}}
		if d := strings.TrimSpace(row.Date); d != "" {
			if t, err := time.Parse("2006-01-02", d); err == nil {
				rec.Date = t
			}
		}
		rs.Records = append(rs.Records, rec)
	}
	return rs
}

// Summarize partitions records by exact category equality and sums each
// partition. Totals come back sorted by category so two runs over the
// same input serialize identically.
func Summarize(rs RecordSet) Aggregation {
	byCategory := map[string]int64{}
	for _, r := range rs.Records {
		byCategory[r.Category] += r.Value.Cents
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	totals := make([]CategoryTotal, 0, len(categories))
	for _, c := range categories {
		totals = append(totals, CategoryTotal{Category: c, Total: Money{Cents: byCategory[c]}})
	}
	return Aggregation{Totals: totals}
}
