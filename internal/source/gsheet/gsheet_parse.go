package gsheet

import (
	"fmt"
	"strconv"
	"strings"

	"tally/internal/core"
)

// parseTable converts a values matrix (as returned by the Sheets API) into
// raw records. The first row is the header and must contain Category and
// Value; a Date column is picked up when present.
func parseTable(values [][]interface{}) ([]core.RawRecord, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s, %s", core.ErrMissingColumn, core.ColumnCategory, core.ColumnValue)
	}
	headers := toStrings(values[0])
	colCategory := indexOf(headers, core.ColumnCategory)
	colValue := indexOf(headers, core.ColumnValue)
	colDate := indexOf(headers, core.ColumnDate)
	if colCategory == -1 || colValue == -1 {
		missing := make([]string, 0, 2)
		if colCategory == -1 {
			missing = append(missing, core.ColumnCategory)
		}
		if colValue == -1 {
			missing = append(missing, core.ColumnValue)
		}
		return nil, fmt.Errorf("%w: %s", core.ErrMissingColumn, strings.Join(missing, ", "))
	}

	rows := make([]core.RawRecord, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		rows = append(rows, core.RawRecord{
			Category: safeGet(row, colCategory),
			Value:    safeGet(row, colValue),
			Date:     safeGet(row, colDate),
		})
	}
	return rows, nil
}

// toStrings renders each cell as text. Numeric cells come back from the
// API as float64 and are rendered without exponent notation so core's
// decimal parser accepts them.
func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch t := v.(type) {
		case string:
			out[i] = t
		case float64:
			out[i] = strconv.FormatFloat(t, 'f', -1, 64)
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprintf("%v", t)
		}
	}
	return out
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func safeGet(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
