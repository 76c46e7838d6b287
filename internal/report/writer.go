// Package report serializes an aggregation to its output document.
//
// The document is a flat JSON object mapping category to sum, keys sorted,
// two-space indentation, trailing newline. The same input always yields
// byte-identical output so published diffs stay meaningful.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tally/internal/core"
)

// Render produces the output document bytes for an aggregation.
func Render(agg core.Aggregation) ([]byte, error) {
	byCategory := make(map[string]core.Money, len(agg.Totals))
	for _, t := range agg.Totals {
		byCategory[t.Category] = t.Total
	}
	// encoding/json writes map keys in sorted order, which is exactly the
	// stable ordering the published document needs.
	b, err := json.MarshalIndent(byCategory, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal aggregation: %w", err)
	}
	return append(b, '\n'), nil
}

// Write renders the aggregation and writes it to path atomically: the
// document goes to a temporary file in the destination directory first and
// is renamed into place only once fully written. A failed run never leaves
// a truncated file and never clobbers an existing one.
func Write(agg core.Aggregation, path string) error {
	doc, err := Render(agg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publish output: %w", err)
	}
	return nil
}
