package ingest

import (
	"context"
	"fmt"
	"slices"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
)

// FileResult is the outcome of importing one captured file
type FileResult struct {
	Path   string
	Action string
	OK     bool
	Err    error
}

// BatchConfig configures a Batch
type BatchConfig struct {
	// Workers is the number of files read and decoded concurrently
	Workers int
	// QueueSize bounds the number of pending reads; zero means unbounded
	QueueSize int
}

// Batch imports captured payload files from disk.
// Files are read concurrently but applied one at a time in the given order,
// so later snapshots of the same entity win.
type Batch struct {
	dispatcher Dispatcher
	fs         adapter.FileSystem
	config     BatchConfig
}

// NewBatch creates a new batch importer
func NewBatch(dispatcher Dispatcher, fs adapter.FileSystem, cfg BatchConfig) *Batch {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Batch{
		dispatcher: dispatcher,
		fs:         fs,
		config:     cfg,
	}
}

type loadedFile struct {
	data   []byte
	action string
	err    error
}

// Expand resolves glob patterns into a sorted, deduplicated list of files.
// A pattern without matches is kept as is so the read error is reported for it.
func (b *Batch) Expand(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := b.fs.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		slices.Sort(matches)
		paths = append(paths, matches...)
	}
	return slices.Compact(paths), nil
}

// Import imports every file and returns one result per path, in order.
// Decoding and import failures are reported per file; only a cancelled context stops the batch.
func (b *Batch) Import(ctx context.Context, paths []string) ([]FileResult, error) {
	pool := pond.NewResultPool[*loadedFile](
		b.config.Workers,
		pond.WithQueueSize(b.config.QueueSize),
	)
	defer pool.StopAndWait()

	tasks := make([]pond.Result[*loadedFile], len(paths))
	for idx, path := range paths {
		tasks[idx] = pool.Submit(func() *loadedFile {
			return b.load(path)
		})
	}

	results := make([]FileResult, 0, len(paths))
	for idx, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		loaded, err := tasks[idx].Wait()
		if err != nil {
			return results, fmt.Errorf("failed to load %s: %w", path, err)
		}

		result := FileResult{Path: path, Action: loaded.action, Err: loaded.err}
		if result.Err == nil {
			result.OK, result.Err = b.dispatcher.Dispatch(ctx, loaded.action, Input{
				Payload:  loaded.data,
				FilePath: path,
			})
		}

		if result.Err != nil {
			logger.ErrorCtx(ctx, result.Err, zap.String("file", path), zap.String("action", result.Action))
		} else {
			logger.InfoCtx(ctx, "Imported file",
				zap.String("file", path),
				zap.String("action", result.Action),
				zap.Bool("ok", result.OK),
			)
		}
		results = append(results, result)
	}
	return results, nil
}

func (b *Batch) load(path string) *loadedFile {
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return &loadedFile{err: fmt.Errorf("failed to read payload file: %w", err)}
	}
	action, err := ActionOf(data)
	if err != nil {
		return &loadedFile{err: err}
	}
	return &loadedFile{data: data, action: action}
}
