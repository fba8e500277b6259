package ingest

import (
	"strings"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// fullWidthPlus marks evolved relics in display names
const fullWidthPlus = "＋"

func (r worldRecord) row() *schema.World {
	return &schema.World{
		ID:        int64(r.ID),
		Name:      r.Name,
		SeriesID:  int64(r.SeriesID),
		OpenedAt:  unixTime(r.OpenedAt),
		ClosedAt:  unixTime(r.ClosedAt),
		KeptOutAt: unixTime(r.KeptOutAt),
		WorldType: domain.WorldType(r.Type),
	}
}

func (r dungeonRecord) row() *schema.Dungeon {
	return &schema.Dungeon{
		ID:                  int64(r.ID),
		WorldID:             int64(r.WorldID),
		SeriesID:            int64(r.SeriesID),
		Name:                r.Name,
		DungeonType:         domain.DungeonType(r.Type),
		ChallengeLevel:      int(r.ChallengeLevel),
		TotalStamina:        int(r.TotalStamina),
		OpenedAt:            unixTime(r.OpenedAt),
		ClosedAt:            unixTime(r.ClosedAt),
		Prologue:            r.Prologue,
		Epilogue:            r.Epilogue,
		BackgroundImagePath: stripImagePrefix(r.BackgroundImagePath),
		PrologueImagePath:   stripImagePrefix(r.PrologueImagePath),
		EpilogueImagePath:   stripImagePrefix(r.EpilogueImagePath),
	}
}

func (r prizeRecord) row(prizeType domain.PrizeType, dungeonID, questID *int64) *schema.Prize {
	return &schema.Prize{
		DropID:    int64(r.ID),
		PrizeType: prizeType,
		DungeonID: dungeonID,
		QuestID:   questID,
		Name:      r.Name,
		Count:     r.prizeCount(),
		DropType:  r.TypeName,
		DispOrder: int(r.DispOrder),
		ImagePath: stripImagePrefix(r.ImagePath),
	}
}

func (r battleRecord) row() *schema.Battle {
	return &schema.Battle{
		ID:        int64(r.ID),
		DungeonID: int64(r.DungeonID),
		Name:      r.Name,
		RoundNum:  int(r.RoundNum),
		HasBoss:   bool(r.HasBoss),
		Stamina:   int(r.Stamina),
	}
}

func (r enemyRecord) row(isSpEnemy bool, event battleEvent) *schema.Enemy {
	enemy := &schema.Enemy{
		EnemyID:   int64(r.EnemyID),
		ParamID:   int64(r.ParamID),
		Lv:        int(r.Lv),
		Name:      r.DispName,
		BreedID:   int(r.BreedID),
		Size:      int(r.Size),
		IsSpEnemy: isSpEnemy,
		EventType: event.EventType,
		MaxHP:     int(r.MaxHP),
		Acc:       int(r.Acc),
		Atk:       int(r.Atk),
		Critical:  int(r.Critical),
		Defense:   int(r.Def),
		Eva:       int(r.Eva),
		Looking:   int(r.Looking),
		Matk:      int(r.Matk),
		Mdef:      int(r.Mdef),
		Mnd:       int(r.Mnd),
		Spd:       int(r.Spd),
		Exp:       int(r.Exp),
	}
	if event.EventID != nil {
		id := int64(*event.EventID)
		enemy.EventID = &id
	}
	return enemy
}

func (r conditionRecord) row() *schema.Condition {
	return &schema.Condition{
		ConditionID: int64(r.ID),
		CodeName:    r.CodeName,
		Title:       r.Title,
	}
}

func (r relicRecord) row() *schema.Relic {
	return &schema.Relic{
		EquipmentID:                int64(r.EquipmentID),
		Level:                      int(r.Level),
		Rarity:                     int(r.Rarity),
		Name:                       strings.ReplaceAll(r.Name, fullWidthPlus, ""),
		BaseRarity:                 int(r.BaseRarity),
		LevelMax:                   int(r.LevelMax),
		EvolutionNum:               int(r.EvolutionNum),
		MaxEvolutionNum:            int(r.MaxEvolutionNum),
		CanEvolvePotentially:       bool(r.CanEvolvePotentially),
		IsMaxEvolutionNum:          bool(r.IsMaxEvolutionNum),
		SeriesID:                   int64(r.SeriesID),
		ImagePath:                  stripImagePrefix(r.ImagePath),
		DetailImagePath:            stripImagePrefix(r.DetailImagePath),
		Description:                r.Description,
		HasSomeonesSoulStrike:      bool(r.HasSomeonesSoulStrike),
		HasSoulStrike:              bool(r.HasSoulStrike),
		SoulStrikeID:               int64Ptr(r.SoulStrikeID),
		RequiredEnhancementBaseGil: intPtr(r.RequiredEnhancementBaseGil),
		RequiredEvolutionGil:       intPtr(r.RequiredEvolutionGil),
		SaleGil:                    int(r.SaleGil),
		CategoryID:                 int(r.CategoryID),
		CategoryName:               r.CategoryName,
		EquipmentType:              int(r.EquipmentType),
		HP:                         int(r.HP),
		Acc:                        int(r.Acc),
		Atk:                        int(r.Atk),
		Critical:                   int(r.Critical),
		Defense:                    int(r.Def),
		Eva:                        int(r.Eva),
		Matk:                       int(r.Matk),
		Mdef:                       int(r.Mdef),
		Mnd:                        int(r.Mnd),
		SeriesHP:                   int(r.SeriesHP),
		SeriesAcc:                  int(r.SeriesAcc),
		SeriesAtk:                  int(r.SeriesAtk),
		SeriesDef:                  int(r.SeriesDef),
		SeriesEva:                  int(r.SeriesEva),
		SeriesMatk:                 int(r.SeriesMatk),
		SeriesMdef:                 int(r.SeriesMdef),
		SeriesMnd:                  int(r.SeriesMnd),
	}
}

func (r materialRecord) row() *schema.Material {
	return &schema.Material{
		ID:          int64(r.ID),
		Name:        r.Name,
		Rarity:      int(r.Rarity),
		SaleGil:     int(r.SaleGil),
		Description: r.Description,
	}
}

func (r characterRecord) row() *schema.Character {
	name := r.Name
	if r.JobName == domain.KeeperJobName {
		name = domain.TyroName
	}
	return &schema.Character{
		BuddyID:     int64(r.BuddyID),
		Level:       int(r.Level),
		Name:        name,
		JobName:     r.JobName,
		Description: r.Description,
		SeriesID:    int64(r.SeriesID),
		ImagePath:   stripImagePrefix(r.ImagePath),
		HP:          int(r.HP),
		Atk:         int(r.Atk),
		Defense:     int(r.Def),
		Acc:         int(r.Acc),
		Eva:         int(r.Eva),
		Matk:        int(r.Matk),
		Mdef:        int(r.Mdef),
		Mnd:         int(r.Mnd),
		Spd:         int(r.Spd),
		SeriesHP:    int(r.SeriesHP),
		SeriesAtk:   int(r.SeriesAtk),
		SeriesDef:   int(r.SeriesDef),
		SeriesAcc:   int(r.SeriesAcc),
		SeriesEva:   int(r.SeriesEva),
		SeriesMatk:  int(r.SeriesMatk),
		SeriesMdef:  int(r.SeriesMdef),
		SeriesMnd:   int(r.SeriesMnd),
		SeriesSpd:   int(r.SeriesSpd),
	}
}

// withoutGear subtracts the stats of one equipped piece. Inside its own series
// a piece adds its series stats to the series columns, elsewhere its base stats.
func (r characterRecord) withoutGear(gear relicRecord) characterRecord {
	bonus := gear.gearStats.asSeries()
	if gear.SeriesID == r.SeriesID {
		bonus = gear.seriesGearStats
	}
	r.gearStats = r.gearStats.minus(gear.gearStats)
	r.seriesGearStats = r.seriesGearStats.minus(bonus)
	return r
}

func (r abilityRecord) row() *schema.Ability {
	requiredGil := domain.UnknownRequiredGil
	if r.RequiredGil != nil {
		requiredGil = int(*r.RequiredGil)
	}
	return &schema.Ability{
		AbilityID:    int64(r.AbilityID),
		Grade:        int(r.Grade),
		Name:         r.Name,
		Description:  r.Description,
		Rarity:       int(r.Rarity),
		CategoryID:   int(r.CategoryID),
		CategoryName: r.CategoryName,
		CategoryType: int(r.CategoryType),
		TargetRange:  int(r.TargetRange),
		NextGrade:    int(r.NextGrade),
		MaxGrade:     int(r.MaxGrade),
		Arg1:         int(r.Arg1),
		RequiredGil:  requiredGil,
		SaleGil:      int(r.SaleGil),
	}
}

func (r questRecord) row() *schema.Quest {
	return &schema.Quest{
		ID:                     int64(r.ID),
		Title:                  r.Title,
		Description:            r.Description,
		AchieveCondDescription: r.AchieveCondDescription,
		AchieveType:            int(r.AchieveType),
		AchieveTypeName:        r.AchieveTypeName,
		HintTitle:              r.HintTitle,
		HintMsg:                r.HintMsg,
	}
}

func intPtr(n *Int) *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

func int64Ptr(n *Int) *int64 {
	if n == nil {
		return nil
	}
	v := int64(*n)
	return &v
}
