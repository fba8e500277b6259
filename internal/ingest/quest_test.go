package ingest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

const questPayload = `{
	"quests": [{
		"id": 1001,
		"title": "Make a Friend",
		"description": "Add a follower.",
		"achieve_type": 3,
		"prizes": [{"id": 40000002, "name": "Lightning Orb", "num": 10, "type_name": "ABILITY_MATERIAL"}]
	}],
	"special_quest_prizes": []
}`

func TestImportQuests(t *testing.T) {
	ctx := context.Background()

	t.Run("creates quests with their prizes", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		ok, err := importer.ImportQuests(ctx, payload(questPayload))
		require.NoError(t, err)
		assert.True(t, ok)

		var quest schema.Quest
		require.NoError(t, db.First(&quest, 1001).Error)
		assert.Equal(t, "Make a Friend", quest.Title)

		var prize schema.Prize
		require.NoError(t, db.Where("quest_id = ?", 1001).First(&prize).Error)
		assert.Equal(t, domain.PrizeTypeQuest, prize.PrizeType)
		assert.Equal(t, int64(40000002), prize.DropID)
		assert.Nil(t, prize.DungeonID)
		assert.Equal(t, 10, prize.Count)

		entries := logs(t, db)
		require.Len(t, entries, 2)
		assert.Equal(t, "Create Quest(Make a Friend)", entries[0].Message)
		assert.Equal(t, "Create Prize(Lightning Orb x10 (Quest Reward)) from Quest(Make a Friend)", entries[1].Message)
	})

	t.Run("special prizes are discarded", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		ok, err := importer.ImportQuests(ctx, payload(`{"quests": [], "special_quest_prizes": [{"id": 1}]}`))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(0), count[schema.Prize](t, db))
	})
}

func TestPopulateDropNames(t *testing.T) {
	ctx := context.Background()

	t.Run("names drops from entities imported later", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		_, err := importer.ImportBattle(ctx, payload(battleDetail("507006")))
		require.NoError(t, err)

		var drop schema.Drop
		require.NoError(t, db.First(&drop, 40000002).Error)
		assert.Empty(t, drop.Name)

		require.NoError(t, db.Create(&schema.Material{ID: 40000002, Name: "Lightning Orb", Rarity: 2}).Error)

		named, err := importer.PopulateDropNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, named)

		require.NoError(t, db.First(&drop, 40000002).Error)
		assert.Equal(t, "Lightning Orb", drop.Name)

		updates := updateLogs(t, db)
		require.Len(t, updates, 1)
		assert.Equal(t, "Update Drop(40000002).name from  to Lightning Orb", updates[0].Message)
	})

	t.Run("unresolvable drops are left unnamed", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		_, err := importer.ImportBattle(ctx, payload(battleDetail("507006")))
		require.NoError(t, err)

		named, err := importer.PopulateDropNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, named)
		assert.Empty(t, updateLogs(t, db))
	})
}
