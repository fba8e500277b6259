package store

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// Tx is a unit of work: every read, write and audit entry issued through it
// belongs to the same database transaction.
type Tx struct {
	queries
	db    *gorm.DB
	clock adapter.Clock
}

func newTx(db *gorm.DB, clock adapter.Clock) *Tx {
	return &Tx{
		queries: queries{db: db},
		db:      db,
		clock:   clock,
	}
}

// Record appends an audit log entry for a mutation of entity
func (tx *Tx) Record(ctx context.Context, entity schema.Entity, action schema.LogAction, message string, meta map[string]any) error {
	if meta == nil {
		meta = map[string]any{}
	}
	meta["action"] = string(action)

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal log meta: %w", err)
	}

	entry := schema.Log{
		Timestamp: tx.clock.Now().UTC(),
		Message:   truncate(message, schema.MaxLogLength),
		Entity:    entity.EntityName(),
		Meta:      datatypes.JSON(metaJSON),
	}
	if err := tx.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}

	logger.InfoCtx(ctx, message,
		zap.String("entity", entity.EntityName()),
		zap.String("action", string(action)),
	)
	return nil
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
