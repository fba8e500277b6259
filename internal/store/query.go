package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// queries implements Querier on top of a gorm handle; it is shared by the store and by Tx
type queries struct {
	db *gorm.DB
}

// idSpace describes how an entity kind is searched by an external id
type idSpace struct {
	kind   domain.EntityKind
	lookup func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error)
}

var enemyByEnemyID = idSpace{domain.KindEnemy, func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error) {
	return lookup[schema.Enemy](ctx, db, "enemy_id", id, "lv", all)
}}

var idSpaces = map[domain.EntityKind]idSpace{
	domain.KindMaterial: {domain.KindMaterial, func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error) {
		return lookup[schema.Material](ctx, db, "id", id, "", all)
	}},
	domain.KindWorld: {domain.KindWorld, func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error) {
		return lookup[schema.World](ctx, db, "id", id, "", all)
	}},
	domain.KindDungeon: {domain.KindDungeon, func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error) {
		return lookup[schema.Dungeon](ctx, db, "id", id, "", all)
	}},
	domain.KindAbility: {domain.KindAbility, func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error) {
		return lookup[schema.Ability](ctx, db, "ability_id", id, "name, grade", all)
	}},
	domain.KindRelic: {domain.KindRelic, func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error) {
		return lookup[schema.Relic](ctx, db, "equipment_id", id, "level, rarity", all)
	}},
	domain.KindBattle: {domain.KindBattle, func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error) {
		return lookup[schema.Battle](ctx, db, "id", id, "", all)
	}},
	domain.KindEnemy: {domain.KindEnemy, func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error) {
		return lookup[schema.Enemy](ctx, db, "param_id", id, "lv", all)
	}},
	domain.KindCharacter: {domain.KindCharacter, func(ctx context.Context, db *gorm.DB, id int64, all bool) ([]any, error) {
		return lookup[schema.Character](ctx, db, "buddy_id", id, "level", all)
	}},
}

// lookup fetches rows of T whose column equals id; without all only the first row is returned
func lookup[T any](ctx context.Context, db *gorm.DB, column string, id int64, order string, all bool) ([]any, error) {
	var rows []T
	query := db.WithContext(ctx).Where(column+" = ?", id)
	if order != "" {
		query = query.Order(order)
	}
	if !all {
		query = query.Limit(1)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to look up %T by %s: %w", *new(T), column, err)
	}

	items := make([]any, len(rows))
	for i := range rows {
		items[i] = &rows[i]
	}
	return items, nil
}

// GetByID resolves an id against every id space in precedence order
func (q queries) GetByID(ctx context.Context, id int64, opts LookupOptions) (*LookupResult, error) {
	spaces := make([]idSpace, 0, len(domain.IDPrecedence)+1)
	if opts.Enemy {
		spaces = append(spaces, enemyByEnemyID)
	}
	for _, kind := range domain.IDPrecedence {
		spaces = append(spaces, idSpaces[kind])
	}

	for _, space := range spaces {
		items, err := space.lookup(ctx, q.db, id, opts.All)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			return &LookupResult{Kind: space.kind, ID: id, Items: items}, nil
		}
	}
	return nil, nil
}

// GetByName resolves a page name; only "about" is answered
func (q queries) GetByName(ctx context.Context, name string) (*LookupResult, error) {
	if name == string(domain.KindAbout) {
		return &LookupResult{Kind: domain.KindAbout}, nil
	}
	return nil, ErrNameLookupUnsupported
}

// ResolveName finds a display name for an item id among already imported entities
func (q queries) ResolveName(ctx context.Context, id int64) (string, error) {
	var drop schema.Drop
	err := q.db.WithContext(ctx).Where("id = ? AND name <> ''", id).Limit(1).Find(&drop).Error
	if err != nil {
		return "", fmt.Errorf("failed to query drop name: %w", err)
	}
	if drop.Name != "" {
		return drop.Name, nil
	}

	result, err := q.GetByID(ctx, id, LookupOptions{})
	if err != nil {
		return "", err
	}
	if named, ok := result.First().(schema.Named); ok {
		return named.DisplayName(), nil
	}
	return "", nil
}

// ListCategory lists every entity of a category
func (q queries) ListCategory(ctx context.Context, query CategoryQuery) ([]any, error) {
	db := q.db.WithContext(ctx)
	switch query.Category {
	case domain.CategoryMaterial:
		var rows []schema.Material
		err := withRarity(db, query.Rarity).Order("rarity, name").Find(&rows).Error
		return toItems(rows, err)
	case domain.CategoryAbility:
		var rows []schema.Ability
		err := withRarity(db, query.Rarity).Order("name, ability_id, grade").Find(&rows).Error
		return toItems(firstPer(rows, func(a schema.Ability) any { return a.AbilityID }), err)
	case domain.CategoryEnemy:
		var rows []schema.Enemy
		err := db.Order("enemy_id, param_id").Find(&rows).Error
		return toItems(firstPer(rows, func(e schema.Enemy) any { return e.EnemyID }), err)
	case domain.CategoryRelic:
		var rows []schema.Relic
		err := withRarity(db, query.Rarity).Order("name, rarity, level").Find(&rows).Error
		return toItems(firstPer(rows, func(r schema.Relic) any { return r.Name }), err)
	case domain.CategoryWorld:
		var rows []schema.World
		err := db.Order("id").Find(&rows).Error
		return toItems(rows, err)
	case domain.CategoryDungeon:
		var rows []schema.Dungeon
		tx := db
		if query.Filter != 0 {
			tx = tx.Where("world_id = ?", query.Filter)
		}
		err := tx.Order("world_id, id").Find(&rows).Error
		return toItems(rows, err)
	case domain.CategoryLog:
		var rows []schema.Log
		err := db.Order("timestamp DESC, id DESC").Limit(domain.RecentLogLimit).Find(&rows).Error
		return toItems(rows, err)
	case domain.CategoryCharacter:
		var rows []schema.Character
		if query.Filter != 0 {
			err := db.Where("level <= ?", query.Filter).Order("buddy_id, level").Find(&rows).Error
			return toItems(rows, err)
		}
		err := db.Order("buddy_id, level DESC").Find(&rows).Error
		return toItems(firstPer(rows, func(c schema.Character) any { return c.BuddyID }), err)
	case domain.CategoryQuest:
		var rows []schema.Quest
		err := db.Order("id").Find(&rows).Error
		return toItems(rows, err)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, query.Category)
	}
}

// DungeonsWithoutBattles lists dungeons whose battles were never imported
func (q queries) DungeonsWithoutBattles(ctx context.Context) ([]schema.Dungeon, error) {
	var rows []schema.Dungeon
	err := q.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM battles WHERE battles.dungeon_id = dungeons.id)").
		Order("world_id, id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query dungeons without battles: %w", err)
	}
	return rows, nil
}

// BattlesWithoutConditions lists battles with no win conditions imported
func (q queries) BattlesWithoutConditions(ctx context.Context) ([]schema.Battle, error) {
	var rows []schema.Battle
	err := q.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM condition_battles WHERE condition_battles.battle_id = battles.id)").
		Order("dungeon_id, id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query battles without conditions: %w", err)
	}
	return rows, nil
}

// ActiveEvents lists event worlds open at the given time
func (q queries) ActiveEvents(ctx context.Context, now time.Time) ([]schema.World, error) {
	var rows []schema.World
	err := q.db.WithContext(ctx).
		Where("world_type = ? AND opened_at <= ? AND kept_out_at > ?", domain.WorldTypeChallenge, now, now).
		Order("opened_at").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query active events: %w", err)
	}
	return rows, nil
}

func withRarity(db *gorm.DB, rarity int) *gorm.DB {
	if rarity == 0 {
		return db
	}
	return db.Where("rarity = ?", rarity)
}

// firstPer keeps the first row of every group, preserving order
func firstPer[T any](rows []T, key func(T) any) []T {
	seen := make(map[any]struct{}, len(rows))
	out := rows[:0]
	for _, row := range rows {
		k := key(row)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, row)
	}
	return out
}

func toItems[T any](rows []T, err error) ([]any, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to list category: %w", err)
	}
	items := make([]any, len(rows))
	for i := range rows {
		items[i] = &rows[i]
	}
	return items, nil
}
