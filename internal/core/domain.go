package core

import (
	"errors"
	"time"
)

// Column names expected in the input header.
const (
	ColumnCategory = "Category"
	ColumnValue    = "Value"
	ColumnDate     = "Date" // optional, tolerated but unused
)

type (
	// Money is an exact decimal amount stored as hundredths (cents).
	Money struct {
		Cents int64
	}

	// RawRecord is one input row exactly as read from the source,
	// before any coercion.
	RawRecord struct {
		Category string
		Value    string
		Date     string
	}

	// Record is one input row after the Value field coerced successfully.
	Record struct {
		Category string
		Value    Money
		Date     time.Time // zero when the source row had no parseable date
	}

	// RecordSet holds the coerced rows of a single run together with the
	// number of rows excluded because their Value was not numeric.
	RecordSet struct {
		Records []Record
		Dropped int
	}

	// CategoryTotal is the sum of all valid values sharing one category.
	CategoryTotal struct {
		Category string
		Total    Money
	}

	// Aggregation is the category->sum mapping produced by a run.
	// Totals is sorted by category so serialized output is stable.
	Aggregation struct {
		Totals []CategoryTotal
	}
)

var (
	ErrInputNotFound = errors.New("input not found")
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidValue  = errors.New("invalid value")
)

// Get returns the total for a category and whether it is present.
func (a Aggregation) Get(category string) (Money, bool) {
	for _, t := range a.Totals {
		if t.Category == category {
			return t.Total, true
		}
	}
	return Money{}, false
}

// GrandTotal returns the sum across all categories.
func (a Aggregation) GrandTotal() Money {
	var cents int64
	for _, t := range a.Totals {
		cents += t.Total.Cents
	}
	return Money{Cents: cents}
}

// Len returns the number of distinct categories.
func (a Aggregation) Len() int {
	return len(a.Totals)
}
