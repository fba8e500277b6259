package ingest

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// ImportRecipes imports every ability grade of the recipe feed with its material costs.
// Every referenced material must already be imported.
func (i *Importer) ImportRecipes(ctx context.Context, in Input) (bool, error) {
	var payload recipePayload
	if err := i.load(ctx, "ImportRecipes", in, &payload); err != nil {
		return false, err
	}
	if payload.Recipe == nil {
		return false, missingKey("recipe")
	}

	return i.run(ctx, "ImportRecipes", func(tx *store.Tx) error {
		for _, abilityKey := range slices.Sorted(maps.Keys(payload.Recipe)) {
			grades := payload.Recipe[abilityKey]
			for _, gradeKey := range slices.Sorted(maps.Keys(grades)) {
				if err := importAbility(ctx, tx, grades[gradeKey]); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ImportAbilityUpgrade fills in the gil cost of an upgraded ability grade.
// An ability that was never imported is only reported.
func (i *Importer) ImportAbilityUpgrade(ctx context.Context, in Input) (bool, error) {
	var payload abilityUpgradePayload
	if err := i.load(ctx, "ImportAbilityUpgrade", in, &payload); err != nil {
		return false, err
	}
	if payload.UpgradedAbility == nil {
		return false, missingKey("upgraded_ability")
	}
	incoming := payload.UpgradedAbility.row()

	return i.run(ctx, "ImportAbilityUpgrade", func(tx *store.Tx) error {
		ability, err := store.Find[schema.Ability](ctx, tx,
			store.Key{"ability_id": incoming.AbilityID, "grade": incoming.Grade})
		if err != nil {
			return err
		}
		if ability == nil {
			logger.ErrorCtx(ctx, fmt.Errorf("upgraded ability %d grade %d was never imported", incoming.AbilityID, incoming.Grade))
			return nil
		}
		return backfillRequiredGil(ctx, tx, ability, incoming)
	})
}

func importAbility(ctx context.Context, tx *store.Tx, record abilityRecord) error {
	incoming := record.row()
	ability, created, err := store.GetOrCreate[schema.Ability](ctx, tx,
		store.Key{"ability_id": incoming.AbilityID, "grade": incoming.Grade},
		func() *schema.Ability { return incoming },
	)
	if err != nil {
		return err
	}
	if !created {
		return backfillRequiredGil(ctx, tx, ability, incoming)
	}

	if record.Arg2 != 0 || record.Arg3 != 0 {
		logger.ErrorCtx(ctx, errors.New("unexpected ability arguments discarded"),
			zap.String("ability", store.Describe(ability)),
			zap.Int64("arg2", int64(record.Arg2)),
			zap.Int64("arg3", int64(record.Arg3)),
		)
	}

	for _, key := range slices.Sorted(maps.Keys(record.MaterialID2Num)) {
		materialID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: material id %q: %w", ErrMalformedPayload, key, err)
		}
		material, err := store.Find[schema.Material](ctx, tx, store.Key{"id": materialID})
		if err != nil {
			return err
		}
		if material == nil {
			return fmt.Errorf("%w: %d", domain.ErrMaterialNotFound, materialID)
		}

		count := int(record.MaterialID2Num[key])
		_, _, err = store.GetOrCreate[schema.AbilityCost](ctx, tx,
			store.Key{"ability_row_id": ability.ID, "material_id": material.ID},
			func() *schema.AbilityCost {
				return &schema.AbilityCost{AbilityRowID: ability.ID, MaterialID: material.ID, Count: count}
			},
			store.Untracked(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// backfillRequiredGil replaces the unknown gil sentinel with a real cost; a real cost is never overwritten
func backfillRequiredGil(ctx context.Context, tx *store.Tx, ability, incoming *schema.Ability) error {
	_, err := store.DiffUpdate[schema.Ability](ctx, tx, ability, incoming, []string{"required_gil"}, requiredGilFrozen)
	return err
}

func requiredGilFrozen(_ string, old, new any) bool {
	oldGil, _ := old.(int)
	newGil, _ := new.(int)
	return oldGil != domain.UnknownRequiredGil || newGil <= 0 || newGil == domain.UnknownRequiredGil
}
