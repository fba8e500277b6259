// Package storetest opens throwaway databases for tests of packages built on the store.
package storetest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// NewSQLite opens a private in-memory SQLite database with every table migrated.
// The database is closed when the test finishes.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A shared-cache memory database lives as long as one connection stays open
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(schema.Models()...))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}
