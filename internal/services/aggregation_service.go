package services

import (
	"context"
	"fmt"
	"log/slog"

	"tally/internal/amqp"
	"tally/internal/core"
	"tally/internal/report"
	"tally/internal/source"
	"tally/internal/storage"
)

// AggregationService runs the whole transform: read the table, coerce and
// filter rows, group-sum by category, write the output document. Archive
// and notification are best effort and never fail a run.
type AggregationService struct {
	reader   source.RecordReader
	archive  *storage.SQLiteRepository
	notifier *amqp.Client
}

// RunResult summarizes one completed invocation.
type RunResult struct {
	Aggregation core.Aggregation
	RowsTotal   int
	RowsDropped int
	OutputPath  string
}

func NewAggregationService(reader source.RecordReader, archive *storage.SQLiteRepository, notifier *amqp.Client) *AggregationService {
	return &AggregationService{
		reader:   reader,
		archive:  archive,
		notifier: notifier,
	}
}

// Run executes the transform once. Either the full output document lands at
// outputPath or nothing does; errors carry the core sentinel kinds so the
// entry point can map them to diagnostics.
func (s *AggregationService) Run(ctx context.Context, inputPath, outputPath string) (RunResult, error) {
	rows, err := s.reader.ReadRecords(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("load records: %w", err)
	}

	rs := core.BuildRecordSet(rows)
	if rs.Dropped > 0 {
		slog.WarnContext(ctx, "Rows with non-numeric values excluded",
			"dropped", rs.Dropped,
			"total", len(rows))
	}

	agg := core.Summarize(rs)

	if err := report.Write(agg, outputPath); err != nil {
		return RunResult{}, fmt.Errorf("write report: %w", err)
	}

	result := RunResult{
		Aggregation: agg,
		RowsTotal:   len(rows),
		RowsDropped: rs.Dropped,
		OutputPath:  outputPath,
	}

	s.archiveRun(ctx, inputPath, result)
	s.notifyRun(ctx, result)

	return result, nil
}

func (s *AggregationService) archiveRun(ctx context.Context, inputPath string, res RunResult) {
	if s.archive == nil {
		return
	}
	_, err := s.archive.RecordRun(ctx, storage.Run{
		InputPath:   inputPath,
		OutputPath:  res.OutputPath,
		RowsTotal:   res.RowsTotal,
		RowsDropped: res.RowsDropped,
	}, res.Aggregation)
	if err != nil {
		// The document is already published; archiving is observability only.
		slog.ErrorContext(ctx, "Failed to archive run", "error", err)
	}
}

func (s *AggregationService) notifyRun(ctx context.Context, res RunResult) {
	if s.notifier == nil {
		return
	}
	msg := amqp.NewReportReadyMessage(res.OutputPath, res.Aggregation.Len(),
		res.RowsTotal, res.RowsDropped, res.Aggregation.GrandTotal().Cents)
	if err := s.notifier.PublishReportReady(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish report ready message", "error", err)
	}
}

// Close closes the optional archive and notifier connections.
func (s *AggregationService) Close() error {
	var errs []error

	if s.archive != nil {
		if err := s.archive.Close(); err != nil {
			errs = append(errs, fmt.Errorf("archive: %w", err))
		}
	}

	if s.notifier != nil {
		if err := s.notifier.Close(); err != nil {
			errs = append(errs, fmt.Errorf("notifier: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close aggregation service: %v", errs)
	}

	return nil
}
