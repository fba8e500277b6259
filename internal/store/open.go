package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rEtSaMfF/ffrk-bottle/internal/config"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
)

// Open connects to the configured database, retrying until cfg.ConnectTimeout elapses
func Open(ctx context.Context, cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.NewGormLogger(debug),
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = cfg.ConnectTimeout
	if b.MaxElapsedTime == 0 {
		b.MaxElapsedTime = time.Minute
	}

	var db *gorm.DB
	attempt := 0
	operation := func() error {
		attempt++
		conn, err := gorm.Open(dialector, gormConfig)
		if err != nil {
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}
		db = conn
		return nil
	}

	notify := func(err error, duration time.Duration) {
		logger.WarnCtx(ctx, "Database not ready, retrying",
			zap.String("driver", cfg.Driver),
			zap.Int("attempt", attempt),
			zap.Duration("retryIn", duration),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	maxOpenConns := cfg.MaxOpenConns
	if cfg.Driver == config.DriverSQLite {
		// SQLite allows a single writer
		maxOpenConns = 1
	}
	if err := ConfigureConnectionPool(db, maxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			return nil, err
		}
	}

	logger.InfoCtx(ctx, "Connected to database",
		zap.String("driver", cfg.Driver),
		zap.Int("attempts", attempt),
	)

	return db, nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
