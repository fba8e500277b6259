package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/api/server"
	"github.com/rEtSaMfF/ffrk-bottle/internal/api/shared/executor"
	"github.com/rEtSaMfF/ffrk-bottle/internal/archive"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting FFRK API")

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
	} else {
		logger.WarnCtx(ctx, "Mastery bonus registry path not configured, every stat change will be applied")
	}

	var archiver archive.Archiver
	if cfg.ArchiveDir != "" {
		archiver = archive.NewArchiver(cfg.ArchiveDir, fs, adapter.NewJCS(), clock)
		logger.InfoCtx(ctx, "Archiving posted payloads", zap.String("dir", cfg.ArchiveDir))
	}

	importer := ingest.NewImporter(dataStore, fs, jsonAdapter, boosts)
	exec := executor.NewExecutor(dataStore, ingest.NewDispatcher(importer, ingest.Actions), archiver, clock)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	srv := server.New(serverConfig, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
