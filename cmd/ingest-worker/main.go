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
	"github.com/rEtSaMfF/ffrk-bottle/internal/archive"
	"github.com/rEtSaMfF/ffrk-bottle/internal/capture"
	"github.com/rEtSaMfF/ffrk-bottle/internal/config"
	"github.com/rEtSaMfF/ffrk-bottle/internal/ingest"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/registry"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIngestWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ingest-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting capture ingest worker")

	// Connect to database
	db, err := store.Open(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	defer func() {
		if err := store.Close(db); err != nil {
			logger.Error(err, zap.String("message", "Failed to close database"))
		}
	}()

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	natsJS := adapter.NewNatsJetStream()

	dataStore := store.NewStore(db, clock)

	// Load mastery bonus registry
	var boosts registry.StatBoostRegistry
	if cfg.MasteryBonusPath != "" {
		boosts, err = registry.NewStatBoostRegistryLoader(fs, jsonAdapter).Load(cfg.MasteryBonusPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load mastery bonus registry",
				zap.Error(err),
				zap.String("path", cfg.MasteryBonusPath))
		}
		logger.InfoCtx(ctx, "Loaded mastery bonus registry", zap.String("path", cfg.MasteryBonusPath))
	}

	var archiver archive.Archiver
	if cfg.ArchiveDir != "" {
		archiver = archive.NewArchiver(cfg.ArchiveDir, fs, adapter.NewJCS(), clock)
	}

	importer := ingest.NewImporter(dataStore, fs, jsonAdapter, boosts)
	dispatcher := ingest.NewDispatcher(importer, ingest.CaptureRoutes)

	worker, err := capture.NewWorker(
		ctx,
		capture.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			Subject:        cfg.NATS.Subject,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			AckWaitTimeout: cfg.NATS.AckWait,
			MaxDeliver:     cfg.NATS.MaxDeliver,
			ConnectTimeout: cfg.NATS.ConnectTimeout,
		},
		natsJS,
		dispatcher,
		archiver,
	)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create capture worker", zap.Error(err))
	}
	defer worker.Close()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "capture"))
		cancel()
	}

	// Give the in-flight capture time to settle
	time.Sleep(time.Second)

	logger.Info("Capture ingest worker stopped")
}
