package ingest

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
)

// Route imports one payload kind
type Route func(i *Importer, ctx context.Context, in Input) (bool, error)

// Actions is the dispatch table of the /post endpoint
var Actions = map[string]Route{
	"get_battle_init_data": (*Importer).ImportBattle,
	"/dff/world/battles":   (*Importer).ImportBattleList,
	"/dff/world/dungeons":  (*Importer).ImportWorld,
	"win_battle":           (*Importer).ImportWinBattle,
}

// CaptureRoutes extends Actions with the endpoints only seen in proxy captures
var CaptureRoutes = func() map[string]Route {
	routes := maps.Clone(Actions)
	routes["/dff/party/list"] = (*Importer).ImportParty
	routes["/dff/"] = (*Importer).ImportDFF
	routes["/dff/ability/create"] = (*Importer).ImportRecipes
	routes["/dff/ability/grow"] = (*Importer).ImportAbilityUpgrade
	routes["/dff/equipment/enhance"] = (*Importer).ImportEnhanceEvolve
	routes["/dff/equipment/evolve"] = (*Importer).ImportEnhanceEvolve
	routes["/dff/grow_egg/use"] = (*Importer).ImportGrow
	routes["/dff/event/quest/list"] = (*Importer).ImportQuests
	return routes
}()

// Dispatcher routes a tagged payload to its importer
//
//go:generate mockgen -source=dispatch.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Dispatch imports in with the importer registered for action
	Dispatch(ctx context.Context, action string, in Input) (bool, error)
}

type dispatcher struct {
	mu       sync.Mutex
	importer *Importer
	routes   map[string]Route
}

// NewDispatcher creates a dispatcher over routes; imports are applied one at a time
func NewDispatcher(importer *Importer, routes map[string]Route) Dispatcher {
	return &dispatcher{
		importer: importer,
		routes:   routes,
	}
}

// Dispatch imports in with the importer registered for action
func (d *dispatcher) Dispatch(ctx context.Context, action string, in Input) (bool, error) {
	if in.Empty() {
		return false, ErrNoInput
	}

	route, ok := d.routes[action]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	ok, err := route(d.importer, ctx, in)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.WarnCtx(ctx, "Import rejected payload", zap.String("action", action))
	}
	return ok, nil
}
