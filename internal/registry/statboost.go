package registry

import (
	"fmt"
	"strings"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
)

// StatBoostRegistry defines the interface for Soul Break mastery bonus lookups
//
//go:generate mockgen -source=statboost.go -destination=../mocks/statboost_registry.go -package=mocks -mock_names=StatBoostRegistry=MockStatBoostRegistry
type StatBoostRegistry interface {
	// Lookup returns the first mastery bonus registered for a character stat
	Lookup(buddyID int64, stat string) (int, bool)

	// Ignore returns a predicate suppressing stat increases explained by a mastery bonus of the character
	Ignore(buddyID int64) func(column string, old, new any) bool
}

// StatBoost represents one mastery bonus entry
type StatBoost struct {
	BuddyID   int64  `json:"buddy_id"`
	Stat      string `json:"stat"`
	Value     int    `json:"value"`
	SoulBreak string `json:"soul_break,omitempty"`
}

// StatBoostRegistryData represents the structure of the registry JSON file
type StatBoostRegistryData struct {
	Version int         `json:"version"`
	Boosts  []StatBoost `json:"boosts"`
}

// statBoostRegistry is the internal implementation of StatBoostRegistry interface
type statBoostRegistry struct {
	// buddy:stat -> first registered bonus
	boosts map[string]int
}

// StatBoostRegistryLoader defines the interface for loading stat boost registries from files
type StatBoostRegistryLoader interface {
	// Load loads the stat boost registry from a JSON file
	Load(filePath string) (StatBoostRegistry, error)
}

type statBoostRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewStatBoostRegistryLoader creates a new StatBoostRegistryLoader with injected dependencies
func NewStatBoostRegistryLoader(fs adapter.FileSystem, json adapter.JSON) StatBoostRegistryLoader {
	return &statBoostRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// Load loads the stat boost registry from a JSON file
func (l *statBoostRegistryLoader) Load(filePath string) (StatBoostRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var registryData StatBoostRegistryData
	if err := l.json.Unmarshal(data, &registryData); err != nil {
		return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
	}

	return NewStatBoostRegistry(registryData.Boosts), nil
}

// NewStatBoostRegistry indexes boosts; when a stat is listed twice for a character the first entry wins
func NewStatBoostRegistry(boosts []StatBoost) StatBoostRegistry {
	registry := &statBoostRegistry{
		boosts: make(map[string]int, len(boosts)),
	}
	for _, boost := range boosts {
		key := boostKey(boost.BuddyID, boost.Stat)
		if _, ok := registry.boosts[key]; ok {
			continue
		}
		registry.boosts[key] = boost.Value
	}
	return registry
}

// Lookup returns the first mastery bonus registered for a character stat
func (r *statBoostRegistry) Lookup(buddyID int64, stat string) (int, bool) {
	if r == nil {
		return 0, false
	}
	value, ok := r.boosts[boostKey(buddyID, stat)]
	return value, ok
}

// Ignore returns a predicate suppressing stat increases explained by a mastery bonus of the character.
// Series stats share the bonus of their base stat.
func (r *statBoostRegistry) Ignore(buddyID int64) func(column string, old, new any) bool {
	return func(column string, old, new any) bool {
		boost, ok := r.Lookup(buddyID, column)
		if !ok {
			return false
		}
		oldValue, ok := old.(int)
		if !ok {
			return false
		}
		newValue, ok := new.(int)
		if !ok {
			return false
		}
		delta := newValue - oldValue
		return delta > 0 && delta == boost
	}
}

// normalizeStat maps payload and column spellings onto one stat name
func normalizeStat(stat string) string {
	stat = strings.ToLower(strings.TrimSpace(stat))
	stat = strings.TrimPrefix(stat, "series_")
	if stat == "def" {
		return "defense"
	}
	return stat
}

func boostKey(buddyID int64, stat string) string {
	return fmt.Sprintf("%d:%s", buddyID, normalizeStat(stat))
}
