package ingest

import (
	"context"
	"errors"
	"slices"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// ImportWinBattle links the achieved conditions of a won battle.
// A win for a battle that was never imported returns false without writing anything.
func (i *Importer) ImportWinBattle(ctx context.Context, in Input) (bool, error) {
	var payload winBattlePayload
	if err := i.load(ctx, "ImportWinBattle", in, &payload); err != nil {
		return false, err
	}
	if payload.BattleID == nil {
		logger.ErrorCtx(ctx, errors.New("win_battle payload has no battle_id"))
		return false, nil
	}
	battleID := int64(*payload.BattleID)

	ok, err := i.run(ctx, "ImportWinBattle", func(tx *store.Tx) error {
		battle, err := store.Find[schema.Battle](ctx, tx, store.Key{"id": battleID})
		if err != nil {
			return err
		}
		if battle == nil {
			return domain.ErrBattleNotFound
		}

		if payload.Result == nil || payload.Result.Score == nil {
			return missingKey("result.score")
		}
		score := payload.Result.Score
		if score.General == nil || score.Specific == nil {
			return missingKey("result.score.general or result.score.specific")
		}

		for _, record := range slices.Concat(score.General, score.Specific) {
			condition, _, err := store.GetOrCreate[schema.Condition](ctx, tx,
				store.Key{"title": record.Title, "condition_id": int64(record.ID), "code_name": record.CodeName},
				record.row,
			)
			if err != nil {
				return err
			}

			_, _, err = store.GetOrCreate[schema.ConditionBattle](ctx, tx,
				store.Key{"condition_row_id": condition.ID, "battle_id": battle.ID},
				func() *schema.ConditionBattle {
					return &schema.ConditionBattle{ConditionRowID: condition.ID, BattleID: battle.ID}
				},
				store.AsAssociation(condition, battle),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, domain.ErrBattleNotFound) {
		logger.ErrorCtx(ctx, err, zap.Int64("battleID", battleID))
		return false, nil
	}
	return ok, err
}
