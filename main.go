package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/pharaohfi/nftmigrator/internal/batch"
	"github.com/pharaohfi/nftmigrator/internal/calldata"
	"github.com/pharaohfi/nftmigrator/internal/custompromauto"
	"github.com/pharaohfi/nftmigrator/internal/migration"
	"github.com/pharaohfi/nftmigrator/internal/store/filestore"
)

type Options struct {
	CastBin string
	OutDir  string
	Verbose bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.CastBin, "cast-bin", "cast", "Path to the foundry cast binary used to generate calldata")
	flag.StringVar(&opts.OutDir, "out-dir", ".", "Directory to write the batch files to")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.WithFields(logrus.Fields{
		"tokens":     len(migration.TokenIDs),
		"batch_size": migration.BatchSize,
	}).Info("Generating migration transactions...")

	batchStore := filestore.NewBatchStore(filestore.WithDir(opts.OutDir))

	generator := calldata.NewGenerator(logger, calldata.ExecRunner{}, opts.CastBin,
		migration.MigrateFunctionSig, migration.XPharaohLoan, migration.PortfolioFactory)
	results := generator.Stream(ctx, migration.TokenIDs)

	batcher := batch.New(logger, batchStore, migration.PharaohLoan, migration.ChainID, migration.BatchSize)
	stats, err := batcher.Run(ctx, results)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Run cancelled before completion")
			return
		}
		logger.WithError(err).Fatal("Failed to write migration transaction batches")
	}

	logMetricsSnapshot(logger)
	logger.WithFields(logrus.Fields{
		"files":          stats.Batches,
		"transactions":   stats.Transactions,
		"skipped_tokens": len(migration.TokenIDs) - stats.Transactions,
	}).Info("Generated migration transaction files")
}

func logMetricsSnapshot(logger *logrus.Logger) {
	values, err := custompromauto.Snapshot()
	if err != nil {
		logger.WithError(err).Warn("Failed to gather run metrics")
		return
	}

	fields := make(logrus.Fields, len(values))
	for name, value := range values {
		fields[name] = value
	}
	logger.WithFields(fields).Debug("Run metrics")
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.CastBin == "" {
		logger.Error("--cast-bin is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.OutDir == "" {
		logger.Error("--out-dir is required")
		flag.Usage()
		os.Exit(1)
	}
}
