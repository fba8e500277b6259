package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/registry"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
)

var (
	// ErrNoInput is returned when neither a payload nor a file path is given
	ErrNoInput = errors.New("one of payload or file path is required")
	// ErrUnknownAction is returned when no importer is registered for an action
	ErrUnknownAction = errors.New("unknown action")
	// ErrMalformedPayload is returned when a payload is not valid JSON or lacks a required key
	ErrMalformedPayload = errors.New("malformed payload")
)

// Importer reconciles game payloads into the store.
// Every ImportX call runs in its own transaction: a nil error with a false
// result is a recoverable data problem, a non-nil error rolls everything back.
// Concurrent calls on one Importer are not serialized and may race on
// find-or-create; share it through a Dispatcher instead.
type Importer struct {
	store  store.Store
	fs     adapter.FileSystem
	json   adapter.JSON
	boosts registry.StatBoostRegistry
}

// NewImporter creates a new importer; boosts may be nil when no mastery registry is configured
func NewImporter(st store.Store, fs adapter.FileSystem, json adapter.JSON, boosts registry.StatBoostRegistry) *Importer {
	return &Importer{
		store:  st,
		fs:     fs,
		json:   json,
		boosts: boosts,
	}
}

// load decodes the input into v, reading the file only when no payload was given
func (i *Importer) load(ctx context.Context, name string, in Input, v any) error {
	if in.Empty() {
		return ErrNoInput
	}

	data := []byte(in.Payload)
	if len(data) == 0 {
		raw, err := i.fs.ReadFile(in.FilePath)
		if err != nil {
			return fmt.Errorf("failed to read payload file: %w", err)
		}
		data = raw
	}

	if err := i.json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	logger.DebugCtx(ctx, "Import start",
		zap.String("importer", name),
		zap.String("file", in.FilePath),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// run executes fn in one transaction
func (i *Importer) run(ctx context.Context, name string, fn func(tx *store.Tx) error) (bool, error) {
	start := time.Now()
	if err := i.store.Transaction(ctx, fn); err != nil {
		return false, fmt.Errorf("failed to run %s: %w", name, err)
	}
	logger.DebugCtx(ctx, "Import end",
		zap.String("importer", name),
		zap.Duration("elapsed", time.Since(start)),
	)
	return true, nil
}

func missingKey(key string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedPayload, key)
}

// ignoreFor returns the stat suppression rule of a character, or nil without a registry
func (i *Importer) ignoreFor(buddyID int64) store.IgnoreFunc {
	if i.boosts == nil {
		return nil
	}
	return i.boosts.Ignore(buddyID)
}
