// Package csvfile reads the record table from a comma-delimited text file
// with a header row. This is the default input source.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"tally/internal/core"
)

type Reader struct {
	path string
}

func New(path string) *Reader {
	return &Reader{path: path}
}

// ReadRecords implements source.RecordReader.
func (r *Reader) ReadRecords(_ context.Context) ([]core.RawRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", core.ErrInputNotFound, r.path)
		}
		return nil, fmt.Errorf("open input %s: %w", r.path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	// Tolerate ragged rows; missing trailing cells read as empty strings.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		// No header row means no schema at all.
		return nil, fmt.Errorf("%w: %s, %s", core.ErrMissingColumn, core.ColumnCategory, core.ColumnValue)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	colCategory := indexOf(header, core.ColumnCategory)
	colValue := indexOf(header, core.ColumnValue)
	colDate := indexOf(header, core.ColumnDate)
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

	var rows []core.RawRecord
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input row: %w", err)
		}
		rows = append(rows, core.RawRecord{
			Category: safeGet(rec, colCategory),
			Value:    safeGet(rec, colValue),
			Date:     safeGet(rec, colDate),
		})
	}
	return rows, nil
}

// indexOf matches header cells after trimming surrounding whitespace and a
// UTF-8 BOM on the first cell; the name itself is matched exactly.
func indexOf(header []string, name string) int {
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
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
