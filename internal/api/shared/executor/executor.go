package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/api/shared/dto"
	apierrors "github.com/rEtSaMfF/ffrk-bottle/internal/api/shared/errors"
	"github.com/rEtSaMfF/ffrk-bottle/internal/archive"
	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/ingest"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
)

// Executor is the interface for the API executor
type Executor interface {
	// Post imports a payload tagged with an action key
	Post(ctx context.Context, payload []byte) (*dto.PostResponse, error)

	// GetByID resolves an id against every id space
	GetByID(ctx context.Context, id int64, opts store.LookupOptions) (*dto.LookupResponse, error)

	// GetByName resolves a page name
	GetByName(ctx context.Context, name string) (*dto.LookupResponse, error)

	// ListCategory lists every entity of a category
	ListCategory(ctx context.Context, query store.CategoryQuery) (*dto.ListResponse, error)

	// ActiveEvents lists the event worlds open now
	ActiveEvents(ctx context.Context) (*dto.ListResponse, error)

	// DungeonsWithoutBattles lists dungeons whose battles were never imported
	DungeonsWithoutBattles(ctx context.Context) (*dto.ListResponse, error)

	// BattlesWithoutConditions lists battles with no win conditions imported
	BattlesWithoutConditions(ctx context.Context) (*dto.ListResponse, error)
}

type executor struct {
	querier    store.Querier
	dispatcher ingest.Dispatcher
	archiver   archive.Archiver
	clock      adapter.Clock
}

// NewExecutor creates the API executor; archiver may be nil
func NewExecutor(querier store.Querier, dispatcher ingest.Dispatcher, archiver archive.Archiver, clock adapter.Clock) Executor {
	return &executor{
		querier:    querier,
		dispatcher: dispatcher,
		archiver:   archiver,
		clock:      clock,
	}
}

func (e *executor) Post(ctx context.Context, payload []byte) (*dto.PostResponse, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, apierrors.New(apierrors.ErrCodeNoData, "Payload is required")
	}

	action, err := ingest.ActionOf(payload)
	if err != nil {
		return nil, apierrors.New(apierrors.ErrCodeMalformedPayload, "Payload is not a JSON object", err.Error())
	}

	if e.archiver != nil && action != "" {
		if path, err := e.archiver.Archive(action, payload); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to archive payload"), zap.String("action", action))
		} else {
			logger.DebugCtx(ctx, "Archived payload", zap.String("path", path))
		}
	}

	ok, err := e.dispatcher.Dispatch(ctx, action, ingest.Input{Payload: payload})
	switch {
	case errors.Is(err, ingest.ErrNoInput):
		return nil, apierrors.New(apierrors.ErrCodeNoData, "Payload is required")
	case errors.Is(err, ingest.ErrUnknownAction):
		return nil, apierrors.New(apierrors.ErrCodeUnknownAction, fmt.Sprintf("Unknown action %q", action))
	case errors.Is(err, ingest.ErrMalformedPayload):
		logger.WarnCtx(ctx, "Malformed payload", zap.String("action", action), zap.Error(err))
		return nil, apierrors.New(apierrors.ErrCodeMalformedPayload, "Malformed payload", err.Error())
	case err != nil:
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to import payload"), zap.String("action", action))
		return nil, apierrors.NewInternalError("Failed to import payload")
	case !ok:
		return nil, apierrors.New(apierrors.ErrCodeBadData, "Payload was rejected")
	}

	return &dto.PostResponse{Success: true}, nil
}

func (e *executor) GetByID(ctx context.Context, id int64, opts store.LookupOptions) (*dto.LookupResponse, error) {
	result, err := e.querier.GetByID(ctx, id, opts)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to look up id: %v", err))
	}

	if result == nil {
		return nil, nil
	}

	return e.lookupResponse(ctx, result)
}

func (e *executor) GetByName(ctx context.Context, name string) (*dto.LookupResponse, error) {
	result, err := e.querier.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNameLookupUnsupported) {
			return nil, apierrors.NewNotFoundError(fmt.Sprintf("No page named %q", name))
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to look up name: %v", err))
	}

	if result == nil {
		return nil, nil
	}

	return e.lookupResponse(ctx, result)
}

func (e *executor) ListCategory(ctx context.Context, query store.CategoryQuery) (*dto.ListResponse, error) {
	rows, err := e.querier.ListCategory(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			return nil, apierrors.NewValidationError(err.Error())
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list category: %v", err))
	}

	return e.listResponse(ctx, rows)
}

func (e *executor) ActiveEvents(ctx context.Context) (*dto.ListResponse, error) {
	worlds, err := e.querier.ActiveEvents(ctx, e.clock.Now())
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list active events: %v", err))
	}

	return e.listResponse(ctx, toAny(worlds))
}

func (e *executor) DungeonsWithoutBattles(ctx context.Context) (*dto.ListResponse, error) {
	dungeons, err := e.querier.DungeonsWithoutBattles(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list dungeons: %v", err))
	}

	return e.listResponse(ctx, toAny(dungeons))
}

func (e *executor) BattlesWithoutConditions(ctx context.Context) (*dto.ListResponse, error) {
	battles, err := e.querier.BattlesWithoutConditions(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list battles: %v", err))
	}

	return e.listResponse(ctx, toAny(battles))
}

func (e *executor) lookupResponse(ctx context.Context, result *store.LookupResult) (*dto.LookupResponse, error) {
	items, err := store.ProjectAll(ctx, result.Items)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to project result: %v", err))
	}

	return &dto.LookupResponse{
		Kind:  result.Kind,
		ID:    result.ID,
		Items: items,
	}, nil
}

func (e *executor) listResponse(ctx context.Context, rows []any) (*dto.ListResponse, error) {
	items, err := store.ProjectAll(ctx, rows)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to project rows: %v", err))
	}

	return dto.NewListResponse(items), nil
}

// toAny boxes model values as pointers so they project like lookup rows
func toAny[T any](rows []T) []any {
	out := make([]any, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
