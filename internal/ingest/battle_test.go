package ingest_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rEtSaMfF/ffrk-bottle/internal/ingest"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

const battleListPayload = `{
	"battles": [
		{"id": 507006, "dungeon_id": 207001, "name": "Garland", "round_num": 2, "has_boss": 1, "stamina": 3},
		{"id": 507007, "dungeon_id": 207001, "name": "Chaos Shrine 2", "round_num": 3, "has_boss": 0, "stamina": 3}
	]
}`

// battleDetail renders a detail payload with one goblin using the current params list shape
func battleDetail(battleID string) string {
	return `{
		"battle": {
			"battle_id": ` + battleID + `,
			"event": [],
			"rounds": [
				{"enemy": [{"is_sp_enemy": 0, "children": [{
					"enemy_id": 5001,
					"drop_item_list": [{"item_id": 40000002}, {"item_id": 0}],
					"params": [{
						"id": 1000, "disp_name": "Goblin", "lv": 10, "max_hp": 120, "atk": 12, "def": 8,
						"def_attributes": [{"attribute_id": "100", "factor": "1"}, {"attribute_id": "201", "factor": "0"}]
					}]
				}]}]}
			]
		}
	}`
}

func TestImportBattleList(t *testing.T) {
	ctx := context.Background()

	t.Run("creates battles for a dungeon that was never imported", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		ok, err := importer.ImportBattleList(ctx, payload(battleListPayload))
		require.NoError(t, err)
		assert.True(t, ok)

		var battle schema.Battle
		require.NoError(t, db.First(&battle, 507006).Error)
		assert.Equal(t, int64(207001), battle.DungeonID)
		assert.True(t, battle.HasBoss)
		assert.Equal(t, int64(0), count[schema.Dungeon](t, db))
		assert.Len(t, logs(t, db), 2)
	})

	t.Run("existing battles are left untouched", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		_, err := importer.ImportBattleList(ctx, payload(battleListPayload))
		require.NoError(t, err)

		renamed := strings.Replace(battleListPayload, `"Garland"`, `"Garland (Elite)"`, 1)
		_, err = importer.ImportBattleList(ctx, payload(renamed))
		require.NoError(t, err)

		var battle schema.Battle
		require.NoError(t, db.First(&battle, 507006).Error)
		assert.Equal(t, "Garland", battle.Name)
		assert.Len(t, logs(t, db), 2)
	})
}

func TestImportBattle(t *testing.T) {
	ctx := context.Background()

	t.Run("same enemy in two battles is stored once", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		_, err := importer.ImportBattleList(ctx, payload(battleListPayload))
		require.NoError(t, err)

		for _, battleID := range []string{"507006", "507007"} {
			ok, err := importer.ImportBattle(ctx, payload(battleDetail(battleID)))
			require.NoError(t, err)
			assert.True(t, ok)
		}

		var enemies []schema.Enemy
		require.NoError(t, db.Find(&enemies).Error)
		require.Len(t, enemies, 1)
		assert.Equal(t, int64(5001), enemies[0].EnemyID)
		assert.Equal(t, int64(1000), enemies[0].ParamID)
		assert.Equal(t, "Goblin", enemies[0].Name)
		assert.Equal(t, 8, enemies[0].Defense)
		assert.Nil(t, enemies[0].EventID)

		assert.Equal(t, int64(2), count[schema.EnemyBattle](t, db))
		assert.Equal(t, int64(2), count[schema.Attribute](t, db))
		assert.Equal(t, int64(2), count[schema.AttributeAssociation](t, db))
		assert.Equal(t, int64(1), count[schema.Drop](t, db))
		assert.Equal(t, int64(2), count[schema.DropAssociation](t, db))
	})

	t.Run("replaying a battle writes nothing", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		_, err := importer.ImportBattleList(ctx, payload(battleListPayload))
		require.NoError(t, err)

		_, err = importer.ImportBattle(ctx, payload(battleDetail("507006")))
		require.NoError(t, err)
		before := len(logs(t, db))

		ok, err := importer.ImportBattle(ctx, payload(battleDetail("507006")))
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Len(t, logs(t, db), before)
		assert.Equal(t, int64(1), count[schema.Enemy](t, db))
		assert.Equal(t, int64(1), count[schema.EnemyBattle](t, db))
		assert.Equal(t, int64(2), count[schema.AttributeAssociation](t, db))
		assert.Equal(t, int64(1), count[schema.DropAssociation](t, db))
	})

	t.Run("missing battle still imports enemies without associations", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		ok, err := importer.ImportBattle(ctx, payload(battleDetail("507006")))
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Equal(t, int64(1), count[schema.Enemy](t, db))
		assert.Equal(t, int64(2), count[schema.Attribute](t, db))
		assert.Equal(t, int64(1), count[schema.Drop](t, db))
		assert.Equal(t, int64(0), count[schema.EnemyBattle](t, db))
		assert.Equal(t, int64(0), count[schema.DropAssociation](t, db))
	})

	t.Run("legacy single params object and event are decoded", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		legacy := `{
			"battle": {
				"battle_id": 507006,
				"event": {"event_id": 9001, "event_type": "challenge"},
				"rounds": [{"enemy": [{"is_sp_enemy": 1, "children": [{
					"enemy_id": 5002,
					"lv": 30,
					"disp_name": "Garland",
					"params": {"id": 2000, "max_hp": 4000},
					"drop_item_list": []
				}]}]}]
			}
		}`
		ok, err := importer.ImportBattle(ctx, payload(legacy))
		require.NoError(t, err)
		assert.True(t, ok)

		var enemy schema.Enemy
		require.NoError(t, db.Where("param_id = ?", 2000).First(&enemy).Error)
		assert.Equal(t, "Garland", enemy.Name)
		assert.Equal(t, 30, enemy.Lv)
		assert.Equal(t, 4000, enemy.MaxHP)
		assert.True(t, enemy.IsSpEnemy)
		require.NotNil(t, enemy.EventID)
		assert.Equal(t, int64(9001), *enemy.EventID)
		require.NotNil(t, enemy.EventType)
		assert.Equal(t, "challenge", *enemy.EventType)
	})

	t.Run("drop is named from an imported material", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)
		require.NoError(t, db.Create(&schema.Material{ID: 40000002, Name: "Lightning Orb", Rarity: 2}).Error)

		_, err := importer.ImportBattle(ctx, payload(battleDetail("507006")))
		require.NoError(t, err)

		var drop schema.Drop
		require.NoError(t, db.First(&drop, 40000002).Error)
		assert.Equal(t, "Lightning Orb", drop.Name)
	})

	t.Run("missing battle key is malformed", func(t *testing.T) {
		importer, _ := newTestImporter(t, nil)

		ok, err := importer.ImportBattle(ctx, payload(`{}`))
		assert.False(t, ok)
		require.Error(t, err)
	})
}

func TestImportWinBattle(t *testing.T) {
	ctx := context.Background()

	const win = `{
		"battle_id": 507006,
		"result": {"score": {
			"general": [],
			"specific": [{"id": 1, "title": "Clear without KO", "code_name": "NO_KO"}]
		}}
	}`

	t.Run("links conditions to an imported battle", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		_, err := importer.ImportBattleList(ctx, payload(battleListPayload))
		require.NoError(t, err)

		ok, err := importer.ImportWinBattle(ctx, payload(win))
		require.NoError(t, err)
		assert.True(t, ok)

		var conditions []schema.Condition
		require.NoError(t, db.Find(&conditions).Error)
		require.Len(t, conditions, 1)
		assert.Equal(t, "Clear without KO", conditions[0].Title)

		var links []schema.ConditionBattle
		require.NoError(t, db.Find(&links).Error)
		require.Len(t, links, 1)
		assert.Equal(t, conditions[0].ID, links[0].ConditionRowID)
		assert.Equal(t, int64(507006), links[0].BattleID)

		entries := logs(t, db)
		last := entries[len(entries)-1]
		assert.Equal(t, "Add Condition(Clear without KO) to Battle(Garland)", last.Message)

		// replay adds nothing
		_, err = importer.ImportWinBattle(ctx, payload(win))
		require.NoError(t, err)
		assert.Equal(t, int64(1), count[schema.ConditionBattle](t, db))
	})

	t.Run("replaying a win writes nothing", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		_, err := importer.ImportBattleList(ctx, payload(battleListPayload))
		require.NoError(t, err)
		_, err = importer.ImportWinBattle(ctx, payload(win))
		require.NoError(t, err)
		before := len(logs(t, db))

		ok, err := importer.ImportWinBattle(ctx, payload(win))
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Len(t, logs(t, db), before)
		assert.Equal(t, int64(1), count[schema.Condition](t, db))
		assert.Equal(t, int64(1), count[schema.ConditionBattle](t, db))
	})

	t.Run("missing score keys are malformed", func(t *testing.T) {
		for name, body := range map[string]string{
			"result":   `{"battle_id": 507006}`,
			"score":    `{"battle_id": 507006, "result": {}}`,
			"general":  `{"battle_id": 507006, "result": {"score": {"specific": []}}}`,
			"specific": `{"battle_id": 507006, "result": {"score": {"general": []}}}`,
		} {
			t.Run(name, func(t *testing.T) {
				importer, db := newTestImporter(t, nil)

				_, err := importer.ImportBattleList(ctx, payload(battleListPayload))
				require.NoError(t, err)
				before := len(logs(t, db))

				ok, err := importer.ImportWinBattle(ctx, payload(body))
				assert.False(t, ok)
				assert.ErrorIs(t, err, ingest.ErrMalformedPayload)
				assert.Len(t, logs(t, db), before)
			})
		}
	})

	t.Run("unknown battle returns false without writes", func(t *testing.T) {
		importer, db := newTestImporter(t, nil)

		ok, err := importer.ImportWinBattle(ctx, payload(win))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(0), count[schema.Condition](t, db))
		assert.Empty(t, logs(t, db))
	})

	t.Run("payload without battle id returns false", func(t *testing.T) {
		importer, _ := newTestImporter(t, nil)

		ok, err := importer.ImportWinBattle(ctx, payload(`{"result": {}}`))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
