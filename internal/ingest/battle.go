package ingest

import (
	"context"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// ImportBattleList creates battle headers; existing battles are left untouched
func (i *Importer) ImportBattleList(ctx context.Context, in Input) (bool, error) {
	var payload battleListPayload
	if err := i.load(ctx, "ImportBattleList", in, &payload); err != nil {
		return false, err
	}
	if payload.Battles == nil {
		return false, missingKey("battles")
	}

	return i.run(ctx, "ImportBattleList", func(tx *store.Tx) error {
		for _, record := range payload.Battles {
			_, _, err := store.GetOrCreate[schema.Battle](ctx, tx,
				store.Key{"id": int64(record.ID)},
				record.row,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ImportBattle imports the enemies of a battle with their resistances and drops.
// When the battle header was never imported the enemies are still reconciled
// but no battle associations are made.
func (i *Importer) ImportBattle(ctx context.Context, in Input) (bool, error) {
	var payload battleDetailPayload
	if err := i.load(ctx, "ImportBattle", in, &payload); err != nil {
		return false, err
	}
	if payload.Battle == nil {
		return false, missingKey("battle")
	}
	battleID := int64(payload.Battle.BattleID)

	event, err := decodeEvent(i.json, payload.Battle.Event)
	if err != nil {
		return false, err
	}

	return i.run(ctx, "ImportBattle", func(tx *store.Tx) error {
		battle, err := store.Find[schema.Battle](ctx, tx, store.Key{"id": battleID})
		if err != nil {
			return err
		}

		for _, round := range payload.Battle.Rounds {
			for _, group := range round.Enemy {
				for _, child := range group.Children {
					if err := i.importEnemy(ctx, tx, battleID, battle, bool(group.IsSpEnemy), event, child); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

func (i *Importer) importEnemy(ctx context.Context, tx *store.Tx, battleID int64, battle *schema.Battle, isSpEnemy bool, event battleEvent, child enemyChild) error {
	drops, err := resolveDrops(ctx, tx, child)
	if err != nil {
		return err
	}

	for _, params := range child.Params {
		record, err := mergeEnemyParams(i.json, child, params)
		if err != nil {
			return err
		}

		enemy, _, err := store.GetOrCreate[schema.Enemy](ctx, tx,
			store.Key{"param_id": int64(record.ParamID), "lv": int(record.Lv)},
			func() *schema.Enemy { return record.row(isSpEnemy, event) },
		)
		if err != nil {
			return err
		}

		for _, tuple := range record.DefAttributes {
			if err := associateAttribute(ctx, tx, enemy, tuple); err != nil {
				return err
			}
		}

		if battle == nil {
			logger.WarnCtx(ctx, "Battle not imported yet, skipping enemy associations",
				zap.Int64("battleID", battleID),
				zap.String("enemy", store.Describe(enemy)),
			)
			continue
		}

		for _, drop := range drops {
			_, _, err := store.GetOrCreate[schema.DropAssociation](ctx, tx,
				store.Key{"enemy_row_id": enemy.ID, "drop_id": drop.ID, "battle_id": battle.ID},
				func() *schema.DropAssociation {
					return &schema.DropAssociation{EnemyRowID: enemy.ID, DropID: drop.ID, BattleID: battle.ID}
				},
				store.AsAssociation(drop, enemy),
				store.WithSuffix(" in "+store.Describe(battle)),
			)
			if err != nil {
				return err
			}
		}

		_, _, err = store.GetOrCreate[schema.EnemyBattle](ctx, tx,
			store.Key{"enemy_row_id": enemy.ID, "battle_id": battle.ID},
			func() *schema.EnemyBattle {
				return &schema.EnemyBattle{EnemyRowID: enemy.ID, BattleID: battle.ID}
			},
			store.AsAssociation(enemy, battle),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// resolveDrops gets or creates the drops of an enemy, naming new ones from known entities
func resolveDrops(ctx context.Context, tx *store.Tx, child enemyChild) ([]*schema.Drop, error) {
	drops := make([]*schema.Drop, 0, len(child.DropItemList))
	for _, item := range child.DropItemList {
		id := int64(item.ItemID)
		if id == 0 {
			continue
		}

		name, err := tx.ResolveName(ctx, id)
		if err != nil {
			return nil, err
		}
		drop, err := getOrCreateDrop(ctx, tx, id, name)
		if err != nil {
			return nil, err
		}
		drops = append(drops, drop)
	}
	return drops, nil
}

// associateAttribute links a resistance to the param_id of an enemy
func associateAttribute(ctx context.Context, tx *store.Tx, enemy *schema.Enemy, tuple attributeTuple) error {
	attributeID, factor := int(tuple.AttributeID), int(tuple.Factor)
	attribute, _, err := store.GetOrCreate[schema.Attribute](ctx, tx,
		store.Key{"attribute_id": attributeID, "factor": factor},
		func() *schema.Attribute {
			return &schema.Attribute{AttributeID: attributeID, Factor: factor}
		},
	)
	if err != nil {
		return err
	}

	_, _, err = store.GetOrCreate[schema.AttributeAssociation](ctx, tx,
		store.Key{"attribute_row_id": attribute.ID, "param_id": enemy.ParamID},
		func() *schema.AttributeAssociation {
			return &schema.AttributeAssociation{AttributeRowID: attribute.ID, ParamID: enemy.ParamID}
		},
		store.AsAssociation(attribute, enemy),
	)
	return err
}
