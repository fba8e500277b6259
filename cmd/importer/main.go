package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/capture"
	"github.com/rEtSaMfF/ffrk-bottle/internal/config"
	"github.com/rEtSaMfF/ffrk-bottle/internal/ingest"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/registry"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
)

var (
	configFile        = flag.String("config", "", "Path to configuration file")
	envPath           = flag.String("env", "config/", "Path to environment files")
	populateDropNames = flag.Bool("populate-drop-names", false, "Name drops from materials, relics and abilities after importing")
	report            = flag.String("report", "", "Print a maintenance report instead of importing: dungeons, battles or events")
	publish           = flag.Bool("publish", false, "Replay the files into the capture stream instead of importing them")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file or glob>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadImporterConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "importer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if err := run(ctx, cfg); err != nil {
		logger.ErrorCtx(ctx, err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ImporterConfig) error {
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	if *publish {
		publisher, err := newPublisher(ctx, cfg)
		if err != nil {
			return err
		}
		defer publisher.Close()
		return importFiles(ctx, ingest.NewBatch(publisher, fs, batchConfig(cfg)))
	}

	db, err := store.Open(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(db); err != nil {
			logger.Error(err, zap.String("message", "Failed to close database"))
		}
	}()

	dataStore := store.NewStore(db, clock)

	if *report != "" {
		return printReport(ctx, dataStore, jsonAdapter, clock, *report)
	}

	var boosts registry.StatBoostRegistry
	if cfg.MasteryBonusPath != "" {
		boosts, err = registry.NewStatBoostRegistryLoader(fs, jsonAdapter).Load(cfg.MasteryBonusPath)
		if err != nil {
			return fmt.Errorf("failed to load mastery bonus registry: %w", err)
		}
	}

	importer := ingest.NewImporter(dataStore, fs, jsonAdapter, boosts)
	dispatcher := ingest.NewDispatcher(importer, ingest.CaptureRoutes)
	if err := importFiles(ctx, ingest.NewBatch(dispatcher, fs, batchConfig(cfg))); err != nil {
		return err
	}

	if *populateDropNames {
		named, err := importer.PopulateDropNames(ctx)
		if err != nil {
			return err
		}
		logger.InfoCtx(ctx, "Populated drop names", zap.Int("named", named))
	}

	return nil
}

func batchConfig(cfg *config.ImporterConfig) ingest.BatchConfig {
	return ingest.BatchConfig{
		Workers:   cfg.Worker.WorkerPoolSize,
		QueueSize: cfg.Worker.WorkerQueueSize,
	}
}

// importFiles runs the batch over the command line arguments
func importFiles(ctx context.Context, batch *ingest.Batch) error {
	if flag.NArg() == 0 {
		return nil
	}

	paths, err := batch.Expand(flag.Args())
	if err != nil {
		return err
	}

	results, err := batch.Import(ctx, paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil || !result.OK {
			failed++
		}
	}
	logger.InfoCtx(ctx, "Import finished",
		zap.Int("files", len(results)),
		zap.Int("failed", failed),
		zap.Bool("published", *publish),
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d files were not imported", failed, len(results))
	}
	return nil
}

func newPublisher(ctx context.Context, cfg *config.ImporterConfig) (capture.Publisher, error) {
	if cfg.NATS.URL == "" {
		return nil, errors.New("nats.url is required to publish")
	}
	return capture.NewPublisher(ctx, capture.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		Subject:        cfg.NATS.Subject,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
		ConnectTimeout: cfg.NATS.ConnectTimeout,
	}, adapter.NewNatsJetStream())
}

// printReport writes one projected row per line to stdout
func printReport(ctx context.Context, querier store.Querier, json adapter.JSON, clock adapter.Clock, name string) error {
	var rows []any
	switch name {
	case "dungeons":
		dungeons, err := querier.DungeonsWithoutBattles(ctx)
		if err != nil {
			return err
		}
		for i := range dungeons {
			rows = append(rows, &dungeons[i])
		}
	case "battles":
		battles, err := querier.BattlesWithoutConditions(ctx)
		if err != nil {
			return err
		}
		for i := range battles {
			rows = append(rows, &battles[i])
		}
	case "events":
		worlds, err := querier.ActiveEvents(ctx, clock.Now())
		if err != nil {
			return err
		}
		for i := range worlds {
			rows = append(rows, &worlds[i])
		}
	default:
		return fmt.Errorf("unknown report %q", name)
	}

	projected, err := store.ProjectAll(ctx, rows)
	if err != nil {
		return err
	}
	for _, row := range projected {
		line, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to encode report row: %w", err)
		}
		if _, err := fmt.Fprintln(os.Stdout, string(line)); err != nil {
			return err
		}
	}
	return nil
}
