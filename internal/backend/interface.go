package backend

import (
	"context"

	"tally/internal/config"
	"tally/internal/source"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// SourceResult contains the record reader and optional cleanup function
type SourceResult struct {
	Reader  source.RecordReader
	Cleanup CleanupFunc
}

// Factory creates record sources based on configuration
type Factory interface {
	CreateSource(ctx context.Context, cfg *config.Config) (*SourceResult, error)
}

// SourceType represents the type of input source
type SourceType string

const (
	CSVSource    SourceType = "csv"
	SheetsSource SourceType = "sheets"
	MemorySource SourceType = "memory"
)

// String implements fmt.Stringer
func (st SourceType) String() string {
	return string(st)
}

// IsValid returns true if the source type is valid
func (st SourceType) IsValid() bool {
	switch st {
	case CSVSource, SheetsSource, MemorySource:
		return true
	default:
		return false
	}
}
