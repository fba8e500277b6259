package ingest

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// ImportWorld imports a world with its dungeons, dungeon prizes and battle captures.
// Existing prizes are never updated.
func (i *Importer) ImportWorld(ctx context.Context, in Input) (bool, error) {
	var payload worldPayload
	if err := i.load(ctx, "ImportWorld", in, &payload); err != nil {
		return false, err
	}
	if payload.World == nil {
		return false, missingKey("world")
	}

	return i.run(ctx, "ImportWorld", func(tx *store.Tx) error {
		world, _, err := store.GetOrCreate[schema.World](ctx, tx,
			store.Key{"id": int64(payload.World.ID)},
			payload.World.row,
		)
		if err != nil {
			return err
		}

		for _, record := range payload.Dungeons {
			if err := i.importDungeon(ctx, tx, world, record); err != nil {
				return err
			}
		}
		return nil
	})
}

func (i *Importer) importDungeon(ctx context.Context, tx *store.Tx, world *schema.World, record dungeonRecord) error {
	if record.Prizes == nil {
		return missingKey(fmt.Sprintf("prizes of dungeon %d", record.ID))
	}

	incoming := record.row()
	if incoming.WorldID == 0 {
		incoming.WorldID = world.ID
	}

	dungeon, created, err := store.GetOrCreate[schema.Dungeon](ctx, tx,
		store.Key{"id": incoming.ID},
		func() *schema.Dungeon { return incoming },
	)
	if err != nil {
		return err
	}
	if !created {
		if _, err := store.Backfill[schema.Dungeon](ctx, tx, dungeon, incoming, []string{"total_stamina"}); err != nil {
			return err
		}
	}

	for _, capture := range record.Captures {
		battleID := int64(capture.TipBattle.ID)
		for _, score := range capture.SpScores {
			_, _, err := store.GetOrCreate[schema.SpecificCondition](ctx, tx,
				store.Key{"battle_id": battleID, "dungeon_id": dungeon.ID, "title": score.Title},
				func() *schema.SpecificCondition {
					return &schema.SpecificCondition{BattleID: battleID, DungeonID: dungeon.ID, Title: score.Title}
				},
			)
			if err != nil {
				return err
			}
		}
	}

	// Buckets are keyed by prize type; sorted so audit entries are stable
	for _, bucket := range slices.Sorted(maps.Keys(record.Prizes)) {
		prizeType, err := domain.ParsePrizeType(bucket)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		for _, prize := range record.Prizes[bucket] {
			if err := grantPrize(ctx, tx, prize, prizeType, dungeon, &dungeon.ID, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// grantPrize gets or creates the drop of a prize, then the prize itself for its owner.
// Exactly one of dungeonID and questID is set.
func grantPrize(ctx context.Context, tx *store.Tx, record prizeRecord, prizeType domain.PrizeType, owner schema.Entity, dungeonID, questID *int64) error {
	dropID := int64(record.ID)
	if _, err := getOrCreateDrop(ctx, tx, dropID, record.Name); err != nil {
		return err
	}

	key := store.Key{"drop_id": dropID, "prize_type": prizeType}
	if dungeonID != nil {
		key["dungeon_id"] = *dungeonID
	} else {
		key["quest_id"] = *questID
	}

	_, _, err := store.GetOrCreate[schema.Prize](ctx, tx, key,
		func() *schema.Prize { return record.row(prizeType, dungeonID, questID) },
		store.WithSuffix(" from "+store.Describe(owner)),
	)
	return err
}

// getOrCreateDrop creates drop identities untracked; only a name backfill is audited
func getOrCreateDrop(ctx context.Context, tx *store.Tx, id int64, name string) (*schema.Drop, error) {
	incoming := &schema.Drop{ID: id, Name: name}
	drop, created, err := store.GetOrCreate[schema.Drop](ctx, tx,
		store.Key{"id": id},
		func() *schema.Drop { return incoming },
		store.Untracked(),
	)
	if err != nil {
		return nil, err
	}
	if created || name == "" {
		return drop, nil
	}
	if _, err := store.Backfill[schema.Drop](ctx, tx, drop, incoming, []string{"name"}); err != nil {
		return nil, err
	}
	return drop, nil
}
