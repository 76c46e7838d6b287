package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tally/internal/amqp"
	"tally/internal/backend"
	"tally/internal/cli"
	"tally/internal/core"
	applog "tally/internal/log"
	"tally/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()

	logger.Info("Starting aggregation",
		applog.FieldDataSource, cfg.DataSource,
		applog.FieldInputPath, cfg.InputPath,
		applog.FieldOutputPath, cfg.OutputPath)

	factory := backend.NewFactory(logger.Logger)
	src, err := factory.CreateSource(ctx, cfg)
	if err != nil {
		return fail(err)
	}
	if src.Cleanup != nil {
		defer src.Cleanup()
	}

	archive := cli.InitArchive(logger, cfg.ArchiveDBPath)

	var notifier *amqp.Client
	if cfg.AMQPURL != "" {
		notifier, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without notifications",
				applog.FieldError, err)
		}
	}

	svc := services.NewAggregationService(src.Reader, archive, notifier)
	defer svc.Close()

	res, err := svc.Run(ctx, cfg.InputPath, cfg.OutputPath)
	if err != nil {
		return fail(err)
	}

	logger.Info("Aggregation complete",
		applog.FieldOutputPath, res.OutputPath,
		applog.FieldCategories, res.Aggregation.Len(),
		applog.FieldRowsTotal, res.RowsTotal,
		applog.FieldRowsDropped, res.RowsDropped,
		applog.FieldGrandTotal, res.Aggregation.GrandTotal().String())

	fmt.Printf("Wrote %s: %d categories from %d rows (%d dropped)\n",
		res.OutputPath, res.Aggregation.Len(), res.RowsTotal, res.RowsDropped)
	return 0
}

// fail writes one diagnostic line to stderr and maps every failure kind to
// exit status 1. Nothing is retried; the invoking workflow treats any
// non-zero status as "do not publish".
func fail(err error) int {
	if errors.Is(err, core.ErrInputNotFound) || errors.Is(err, core.ErrMissingColumn) {
		fmt.Fprintf(os.Stderr, "tally: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "tally: unexpected failure: %v\n", err)
	}
	return 1
}
