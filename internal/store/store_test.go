package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestWorld(id int64, name string) *schema.World {
	return &schema.World{ID: id, Name: name, SeriesID: 101001, WorldType: domain.WorldTypeRealm}
}

func buildTestCharacter(buddyID int64, level int, atk int) *schema.Character {
	return &schema.Character{
		BuddyID:  buddyID,
		Level:    level,
		Name:     "Tyro",
		JobName:  "Keeper",
		SeriesID: 100001,
		HP:       200,
		Atk:      atk,
		Defense:  20,
	}
}

// create inserts rows through GetOrCreate keyed by primary key, committing the transaction
func create[E any, T interface {
	*E
	schema.Entity
}](t *testing.T, store Store, key Key, row T) {
	t.Helper()
	err := store.Transaction(context.Background(), func(tx *Tx) error {
		_, _, err := GetOrCreate[E, T](context.Background(), tx, key, func() T { return row })
		return err
	})
	require.NoError(t, err)
}

func listLogs(t *testing.T, store Store) []*schema.Log {
	t.Helper()
	items, err := store.ListCategory(context.Background(), CategoryQuery{Category: domain.CategoryLog})
	require.NoError(t, err)
	logs := make([]*schema.Log, 0, len(items))
	for _, item := range items {
		logs = append(logs, item.(*schema.Log))
	}
	return logs
}

// =============================================================================
// Test: GetOrCreate
// =============================================================================

func testGetOrCreate(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates once and logs the creation", func(t *testing.T) {
		var created []bool
		for range 2 {
			err := store.Transaction(ctx, func(tx *Tx) error {
				_, c, err := GetOrCreate(ctx, tx, Key{"id": int64(800001)}, func() *schema.World {
					return buildTestWorld(800001, "Cornelia")
				})
				created = append(created, c)
				return err
			})
			require.NoError(t, err)
		}
		assert.Equal(t, []bool{true, false}, created)

		logs := listLogs(t, store)
		require.Len(t, logs, 1)
		assert.Equal(t, "Create World([Realm] Cornelia)", logs[0].Message)
		assert.Equal(t, "World", logs[0].Entity)
	})

	t.Run("untracked rows write no log", func(t *testing.T) {
		before := len(listLogs(t, store))
		err := store.Transaction(ctx, func(tx *Tx) error {
			_, created, err := GetOrCreate(ctx, tx, Key{"id": int64(40000002)}, func() *schema.Drop {
				return &schema.Drop{ID: 40000002, Name: "Lightning Orb"}
			}, Untracked())
			assert.True(t, created)
			return err
		})
		require.NoError(t, err)
		assert.Len(t, listLogs(t, store), before)
	})

	t.Run("association and suffix phrasing", func(t *testing.T) {
		battle := &schema.Battle{ID: 507006, DungeonID: 207001, Name: "Goblin"}
		enemy := &schema.Enemy{EnemyID: 1, ParamID: 2, Lv: 3, Name: "Goblin"}
		dungeon := &schema.Dungeon{ID: 207001, Name: "Cornelia", DungeonType: domain.DungeonTypeClassic, ChallengeLevel: 1}

		err := store.Transaction(ctx, func(tx *Tx) error {
			if _, _, err := GetOrCreate(ctx, tx, Key{"enemy_row_id": int64(9), "battle_id": battle.ID}, func() *schema.EnemyBattle {
				return &schema.EnemyBattle{EnemyRowID: 9, BattleID: battle.ID}
			}, AsAssociation(enemy, battle)); err != nil {
				return err
			}
			_, _, err := GetOrCreate(ctx, tx, Key{"drop_id": int64(1), "prize_type": domain.PrizeTypeCompletion}, func() *schema.Prize {
				return &schema.Prize{DropID: 1, PrizeType: domain.PrizeTypeCompletion, DungeonID: &dungeon.ID, Name: "Potion", Count: 1}
			}, WithSuffix(" from "+Describe(dungeon)))
			return err
		})
		require.NoError(t, err)

		logs := listLogs(t, store)
		messages := make([]string, 0, len(logs))
		for _, l := range logs {
			messages = append(messages, l.Message)
		}
		assert.Contains(t, messages, "Add Enemy(Goblin (3)) to Battle(Goblin)")
		assert.Contains(t, messages, "Create Prize(Potion x1 (Completion Reward)) from Dungeon(Cornelia (Classic) [1])")
	})
}

// =============================================================================
// Test: DiffUpdate and Backfill
// =============================================================================

func testDiffUpdate(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("applies differences and logs each column", func(t *testing.T) {
		create(t, store, Key{"buddy_id": int64(10000200), "level": 1}, buildTestCharacter(10000200, 1, 10))

		var applied []string
		err := store.Transaction(ctx, func(tx *Tx) error {
			existing, err := Find[schema.Character](ctx, tx, Key{"buddy_id": int64(10000200), "level": 1})
			if err != nil {
				return err
			}
			incoming := buildTestCharacter(10000200, 1, 15)
			incoming.Defense = 21
			applied, err = DiffUpdate(ctx, tx, existing, incoming, schema.CharacterStatColumns, nil)
			if err == nil {
				assert.Equal(t, 15, existing.Atk)
			}
			return err
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"atk", "defense"}, applied)

		logs := listLogs(t, store)
		messages := make([]string, 0, len(logs))
		for _, l := range logs {
			messages = append(messages, l.Message)
		}
		assert.Contains(t, messages, "Update Character(Tyro (1)).atk from 10 to 15")
		assert.Contains(t, messages, "Update Character(Tyro (1)).defense from 20 to 21")
	})

	t.Run("ignored differences are not written", func(t *testing.T) {
		before := len(listLogs(t, store))
		err := store.Transaction(ctx, func(tx *Tx) error {
			existing, err := Find[schema.Character](ctx, tx, Key{"buddy_id": int64(10000200), "level": 1})
			if err != nil {
				return err
			}
			incoming := *existing
			incoming.Atk += 5
			applied, err := DiffUpdate(ctx, tx, existing, &incoming, []string{"atk"}, func(column string, old, new any) bool {
				return column == "atk" && new.(int)-old.(int) == 5
			})
			assert.Empty(t, applied)
			return err
		})
		require.NoError(t, err)
		assert.Len(t, listLogs(t, store), before)

		result, err := store.GetByID(ctx, 10000200, LookupOptions{})
		require.NoError(t, err)
		assert.Equal(t, 15, result.First().(*schema.Character).Atk)
	})

	t.Run("backfill only replaces zero values", func(t *testing.T) {
		create(t, store, Key{"id": int64(207001)}, &schema.Dungeon{ID: 207001, WorldID: 800001, Name: "Cornelia", ChallengeLevel: 1, DungeonType: domain.DungeonTypeClassic})

		for _, stamina := range []int{12, 30} {
			err := store.Transaction(ctx, func(tx *Tx) error {
				existing, err := Find[schema.Dungeon](ctx, tx, Key{"id": int64(207001)})
				if err != nil {
					return err
				}
				incoming := *existing
				incoming.TotalStamina = stamina
				_, err = Backfill(ctx, tx, existing, &incoming, []string{"total_stamina"})
				return err
			})
			require.NoError(t, err)
		}

		result, err := store.GetByID(ctx, 207001, LookupOptions{})
		require.NoError(t, err)
		assert.Equal(t, domain.KindDungeon, result.Kind)
		assert.Equal(t, 12, result.First().(*schema.Dungeon).TotalStamina)
	})
}

// =============================================================================
// Test: Transaction
// =============================================================================

func testTransaction(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("error rolls back every write", func(t *testing.T) {
		before := len(listLogs(t, store))
		boom := errors.New("boom")
		err := store.Transaction(ctx, func(tx *Tx) error {
			if _, _, err := GetOrCreate(ctx, tx, Key{"id": int64(9001)}, func() *schema.Material {
				return &schema.Material{ID: 9001, Name: "Power Mote", Rarity: 3}
			}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		result, err := store.GetByID(ctx, 9001, LookupOptions{})
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Len(t, listLogs(t, store), before)
	})

	t.Run("long log messages are truncated", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx *Tx) error {
			return tx.Record(ctx, schema.Quest{ID: 1, Title: "x"}, schema.LogActionCreate, strings.Repeat("a", 300), nil)
		})
		require.NoError(t, err)
		logs := listLogs(t, store)
		require.NotEmpty(t, logs)
		assert.Len(t, logs[0].Message, schema.MaxLogLength)
	})
}

// =============================================================================
// Test: GetByID / GetByName / ResolveName
// =============================================================================

func testGetByID(t *testing.T, store Store) {
	ctx := context.Background()

	create(t, store, Key{"id": int64(77)}, &schema.Material{ID: 77, Name: "Minor Power", Rarity: 1})
	create(t, store, Key{"id": int64(77)}, buildTestWorld(77, "Overlap"))
	create(t, store, Key{"enemy_id": int64(5), "param_id": int64(501), "lv": 10}, &schema.Enemy{EnemyID: 5, ParamID: 501, Lv: 10, Name: "Goblin"})
	create(t, store, Key{"enemy_id": int64(5), "param_id": int64(502), "lv": 5}, &schema.Enemy{EnemyID: 5, ParamID: 502, Lv: 5, Name: "Goblin"})
	create(t, store, Key{"ability_id": int64(30111001), "grade": 1}, &schema.Ability{AbilityID: 30111001, Grade: 1, Name: "Fire", Rarity: 1, MaxGrade: 3})
	create(t, store, Key{"ability_id": int64(30111001), "grade": 2}, &schema.Ability{AbilityID: 30111001, Grade: 2, Name: "Fire", Rarity: 1, MaxGrade: 3})

	t.Run("material wins over world", func(t *testing.T) {
		result, err := store.GetByID(ctx, 77, LookupOptions{})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, domain.KindMaterial, result.Kind)
		assert.Equal(t, "Minor Power", result.First().(*schema.Material).Name)
	})

	t.Run("enemy flag searches enemy_id first ordered by level", func(t *testing.T) {
		result, err := store.GetByID(ctx, 5, LookupOptions{Enemy: true, All: true})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, domain.KindEnemy, result.Kind)
		require.Len(t, result.Items, 2)
		assert.Equal(t, 5, result.Items[0].(*schema.Enemy).Lv)
	})

	t.Run("all returns every grade", func(t *testing.T) {
		result, err := store.GetByID(ctx, 30111001, LookupOptions{All: true})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, domain.KindAbility, result.Kind)
		assert.Len(t, result.Items, 2)
	})

	t.Run("param id falls through to enemy", func(t *testing.T) {
		result, err := store.GetByID(ctx, 502, LookupOptions{})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, domain.KindEnemy, result.Kind)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		result, err := store.GetByID(ctx, 123456789, LookupOptions{})
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("name lookup only answers about", func(t *testing.T) {
		result, err := store.GetByName(ctx, "about")
		require.NoError(t, err)
		assert.Equal(t, domain.KindAbout, result.Kind)

		_, err = store.GetByName(ctx, "Goblin")
		assert.ErrorIs(t, err, ErrNameLookupUnsupported)
	})

	t.Run("resolve name prefers drops then any entity", func(t *testing.T) {
		create(t, store, Key{"id": int64(77)}, &schema.Drop{ID: 77})

		name, err := store.ResolveName(ctx, 77)
		require.NoError(t, err)
		assert.Equal(t, "Minor Power", name)

		create(t, store, Key{"id": int64(88)}, &schema.Drop{ID: 88, Name: "Ether"})
		name, err = store.ResolveName(ctx, 88)
		require.NoError(t, err)
		assert.Equal(t, "Ether", name)

		name, err = store.ResolveName(ctx, 99999)
		require.NoError(t, err)
		assert.Empty(t, name)
	})
}

// =============================================================================
// Test: ListCategory
// =============================================================================

func testListCategory(t *testing.T, store Store) {
	ctx := context.Background()

	create(t, store, Key{"ability_id": int64(1), "grade": 1}, &schema.Ability{AbilityID: 1, Grade: 1, Name: "Blizzard", Rarity: 1})
	create(t, store, Key{"ability_id": int64(1), "grade": 2}, &schema.Ability{AbilityID: 1, Grade: 2, Name: "Blizzard", Rarity: 1})
	create(t, store, Key{"ability_id": int64(2), "grade": 1}, &schema.Ability{AbilityID: 2, Grade: 1, Name: "Aero", Rarity: 2})
	create(t, store, Key{"buddy_id": int64(10100100), "level": 1}, buildTestCharacter(10100100, 1, 10))
	create(t, store, Key{"buddy_id": int64(10100100), "level": 50}, buildTestCharacter(10100100, 50, 80))
	create(t, store, Key{"id": int64(300)}, &schema.Dungeon{ID: 300, WorldID: 3, Name: "A"})
	create(t, store, Key{"id": int64(400)}, &schema.Dungeon{ID: 400, WorldID: 4, Name: "B"})

	t.Run("abilities are listed once per ability id", func(t *testing.T) {
		items, err := store.ListCategory(ctx, CategoryQuery{Category: domain.CategoryAbility})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Aero", items[0].(*schema.Ability).Name)
		assert.Equal(t, 1, items[1].(*schema.Ability).Grade)
	})

	t.Run("rarity filter", func(t *testing.T) {
		items, err := store.ListCategory(ctx, CategoryQuery{Category: domain.CategoryAbility, Rarity: 2})
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("characters show highest level unless filtered", func(t *testing.T) {
		items, err := store.ListCategory(ctx, CategoryQuery{Category: domain.CategoryCharacter})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 50, items[0].(*schema.Character).Level)

		items, err = store.ListCategory(ctx, CategoryQuery{Category: domain.CategoryCharacter, Filter: 10})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].(*schema.Character).Level)
	})

	t.Run("dungeons filtered by world", func(t *testing.T) {
		items, err := store.ListCategory(ctx, CategoryQuery{Category: domain.CategoryDungeon, Filter: 4})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(400), items[0].(*schema.Dungeon).ID)
	})

	t.Run("invalid category", func(t *testing.T) {
		_, err := store.ListCategory(ctx, CategoryQuery{Category: "spaceship"})
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	})
}

// =============================================================================
// Test: Reports
// =============================================================================

func testReports(t *testing.T, store Store) {
	ctx := context.Background()

	create(t, store, Key{"id": int64(1001)}, &schema.Dungeon{ID: 1001, WorldID: 1, Name: "With battles"})
	create(t, store, Key{"id": int64(1002)}, &schema.Dungeon{ID: 1002, WorldID: 1, Name: "Without battles"})
	create(t, store, Key{"id": int64(2001)}, &schema.Battle{ID: 2001, DungeonID: 1001, Name: "Won"})
	create(t, store, Key{"id": int64(2002)}, &schema.Battle{ID: 2002, DungeonID: 1001, Name: "Not won"})
	create(t, store, Key{"condition_row_id": int64(1), "battle_id": int64(2001)}, &schema.ConditionBattle{ConditionRowID: 1, BattleID: 2001})

	t.Run("dungeons without battles", func(t *testing.T) {
		rows, err := store.DungeonsWithoutBattles(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(1002), rows[0].ID)
	})

	t.Run("battles without conditions", func(t *testing.T) {
		rows, err := store.BattlesWithoutConditions(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(2002), rows[0].ID)
	})

	t.Run("active events", func(t *testing.T) {
		now := time.Date(2016, 5, 1, 0, 0, 0, 0, time.UTC)
		opened := now.Add(-24 * time.Hour)
		keptOut := now.Add(24 * time.Hour)
		expired := now.Add(-time.Hour)
		create(t, store, Key{"id": int64(900001)}, &schema.World{ID: 900001, Name: "Open", WorldType: domain.WorldTypeChallenge, OpenedAt: &opened, KeptOutAt: &keptOut})
		create(t, store, Key{"id": int64(900002)}, &schema.World{ID: 900002, Name: "Over", WorldType: domain.WorldTypeChallenge, OpenedAt: &opened, KeptOutAt: &expired})
		create(t, store, Key{"id": int64(900003)}, &schema.World{ID: 900003, Name: "Realm", WorldType: domain.WorldTypeRealm, OpenedAt: &opened, KeptOutAt: &keptOut})

		rows, err := store.ActiveEvents(ctx, now)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Open", rows[0].Name)
	})
}

// =============================================================================
// Test: Project
// =============================================================================

func testProject(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("columns plus search id", func(t *testing.T) {
		out, err := Project(ctx, &schema.Enemy{ID: 4, EnemyID: 5, ParamID: 501, Lv: 10, Name: "Goblin"})
		require.NoError(t, err)
		assert.Equal(t, "Goblin", out["name"])
		assert.Equal(t, int64(501), out["search_id"])
		assert.Equal(t, int64(4), out["id"])
	})

	t.Run("primary key is the default search id", func(t *testing.T) {
		out, err := Project(ctx, &schema.Material{ID: 77, Name: "Minor Power"})
		require.NoError(t, err)
		assert.Equal(t, int64(77), out["search_id"])
	})

	t.Run("nil pointers project as nil", func(t *testing.T) {
		out, err := Project(ctx, buildTestWorld(1, "Cornelia"))
		require.NoError(t, err)
		assert.Nil(t, out["opened_at"])
	})
}

// RunStoreTests runs all store tests against a given store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"GetOrCreate", testGetOrCreate},
		{"DiffUpdate", testDiffUpdate},
		{"Transaction", testTransaction},
		{"GetByID", testGetByID},
		{"ListCategory", testListCategory},
		{"Reports", testReports},
		{"Project", testProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
