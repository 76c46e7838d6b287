// Package backend selects and constructs the record source named by the
// configuration: a CSV file (default), a Google Sheet, or an in-memory
// store used in tests.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"tally/internal/config"
	"tally/internal/source/csvfile"
	"tally/internal/source/gsheet"
	"tally/internal/source/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new source factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateSource implements Factory.CreateSource
func (f *DefaultFactory) CreateSource(ctx context.Context, cfg *config.Config) (*SourceResult, error) {
	sourceType := SourceType(cfg.DataSource)
	if !sourceType.IsValid() {
		return nil, fmt.Errorf("invalid data source: %s", cfg.DataSource)
	}

	switch sourceType {
	case CSVSource:
		f.logger.Info("Initialized CSV source", "input_path", cfg.InputPath)
		return &SourceResult{Reader: csvfile.New(cfg.InputPath)}, nil

	case SheetsSource:
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets source: %w", err)
		}
		f.logger.Info("Initialized Google Sheets source",
			"spreadsheet_id", cfg.GoogleSpreadsheetID,
			"sheet_name", cfg.GoogleSheetName)
		return &SourceResult{Reader: cli}, nil

	case MemorySource:
		f.logger.Info("Initialized memory source")
		return &SourceResult{Reader: memory.New()}, nil

	default:
		return nil, fmt.Errorf("unsupported source type: %s", sourceType)
	}
}
