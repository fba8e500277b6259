package store

import (
	"context"
	"errors"
	"time"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// ErrNameLookupUnsupported is returned by GetByName for anything but the about page
var ErrNameLookupUnsupported = errors.New("name lookup is not supported")

// Store defines the interface for database operations
type Store interface {
	Querier

	// Transaction runs fn inside a single database transaction.
	// Any error returned by fn rolls the whole transaction back.
	Transaction(ctx context.Context, fn func(tx *Tx) error) error
}

// Querier defines the read-side lookups used by the API and by importers
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Querier=MockQuerier
type Querier interface {
	// GetByID resolves an id against every id space in precedence order
	GetByID(ctx context.Context, id int64, opts LookupOptions) (*LookupResult, error)
	// GetByName resolves a page name; only "about" is answered
	GetByName(ctx context.Context, name string) (*LookupResult, error)
	// ListCategory lists every entity of a category
	ListCategory(ctx context.Context, query CategoryQuery) ([]any, error)
	// ResolveName finds a display name for an item id among already imported entities
	ResolveName(ctx context.Context, id int64) (string, error)
	// DungeonsWithoutBattles lists dungeons whose battles were never imported
	DungeonsWithoutBattles(ctx context.Context) ([]schema.Dungeon, error)
	// BattlesWithoutConditions lists battles with no win conditions imported
	BattlesWithoutConditions(ctx context.Context) ([]schema.Battle, error)
	// ActiveEvents lists event worlds open at the given time
	ActiveEvents(ctx context.Context, now time.Time) ([]schema.World, error)
}

// LookupOptions controls GetByID
type LookupOptions struct {
	// All returns every row of the first matching id space instead of only the first row
	All bool
	// Enemy searches Enemy.enemy_id before the regular precedence
	Enemy bool
}

// LookupResult is a tagged lookup result
type LookupResult struct {
	Kind  domain.EntityKind
	ID    int64
	Items []any
}

// First returns the first matched row, or nil
func (r *LookupResult) First() any {
	if r == nil || len(r.Items) == 0 {
		return nil
	}
	return r.Items[0]
}

// CategoryQuery controls ListCategory
type CategoryQuery struct {
	Category domain.Category
	// Rarity filters materials, abilities and relics; zero means any rarity
	Rarity int
	// Filter is category specific: world id for dungeons, max level for characters
	Filter int64
}
