package ingest

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// ImportQuests imports the quest list with the prizes of every quest
func (i *Importer) ImportQuests(ctx context.Context, in Input) (bool, error) {
	var payload questPayload
	if err := i.load(ctx, "ImportQuests", in, &payload); err != nil {
		return false, err
	}
	if payload.Quests == nil {
		return false, missingKey("quests")
	}

	if !isEmptyJSON(payload.SpecialQuestPrizes) {
		logger.ErrorCtx(ctx, errors.New("special quest prizes are not supported and were discarded"),
			zap.ByteString("specialQuestPrizes", payload.SpecialQuestPrizes),
		)
	}

	return i.run(ctx, "ImportQuests", func(tx *store.Tx) error {
		for _, record := range payload.Quests {
			quest, _, err := store.GetOrCreate[schema.Quest](ctx, tx,
				store.Key{"id": int64(record.ID)},
				record.row,
			)
			if err != nil {
				return err
			}

			for _, prize := range record.Prizes {
				if err := grantPrize(ctx, tx, prize, domain.PrizeTypeQuest, quest, nil, &quest.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
