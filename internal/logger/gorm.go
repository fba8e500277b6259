package logger

import (
	"time"

	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
)

// NewGormLogger returns a gorm logger writing through the global zap logger.
// Debug mode traces every statement, otherwise only slow queries and errors are reported.
func NewGormLogger(debug bool) gormLogger.Interface {
	level := gormLogger.Warn
	if debug {
		level = gormLogger.Info
	}
	return gormLogger.New(
		zap.NewStdLog(log.Named("gorm")),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
