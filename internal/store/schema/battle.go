package schema

import "fmt"

// Battle represents the battles table - one encounter within a dungeon
type Battle struct {
	// ID is the external battle id
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// DungeonID references the owning dungeon; the dungeon may not be imported yet
	DungeonID int64 `gorm:"column:dungeon_id;not null;index"`
	// Name is the display name of the battle
	Name string `gorm:"column:name;not null;size:128"`
	// RoundNum is the number of enemy waves
	RoundNum int `gorm:"column:round_num;not null"`
	// HasBoss is set for boss battles
	HasBoss bool `gorm:"column:has_boss;not null"`
	// Stamina is the stamina cost of the battle
	Stamina int `gorm:"column:stamina;not null"`
}

// TableName specifies the table name for the Battle model
func (Battle) TableName() string {
	return "battles"
}

func (Battle) EntityName() string { return "Battle" }

func (b Battle) String() string {
	if b.Name == "" {
		return fmt.Sprintf("%d", b.ID)
	}
	return b.Name
}

func (b Battle) DisplayName() string { return b.Name }

// Condition represents the conditions table - a reusable achievement definition
type Condition struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ConditionID is the external condition id
	ConditionID int64 `gorm:"column:condition_id;not null;index:idx_conditions_natural_key,priority:2"`
	// CodeName is the internal code name of the condition
	CodeName string `gorm:"column:code_name;not null;size:64;index:idx_conditions_natural_key,priority:3"`
	// Title is the text shown to the player
	Title string `gorm:"column:title;not null;size:128;index:idx_conditions_natural_key,priority:1"`
}

// TableName specifies the table name for the Condition model
func (Condition) TableName() string {
	return "conditions"
}

func (Condition) EntityName() string { return "Condition" }

func (c Condition) String() string { return c.Title }

// ConditionBattle represents the condition_battles association table
type ConditionBattle struct {
	// ConditionRowID references conditions.id
	ConditionRowID int64 `gorm:"column:condition_row_id;primaryKey;autoIncrement:false"`
	// BattleID references battles.id
	BattleID int64 `gorm:"column:battle_id;primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for the ConditionBattle model
func (ConditionBattle) TableName() string {
	return "condition_battles"
}

func (ConditionBattle) EntityName() string { return "ConditionBattle" }

func (c ConditionBattle) String() string {
	return fmt.Sprintf("%d/%d", c.ConditionRowID, c.BattleID)
}

// SpecificCondition represents the specific_conditions table - condition text unique to one battle of one dungeon
type SpecificCondition struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BattleID is the battle the condition belongs to
	BattleID int64 `gorm:"column:battle_id;not null;index:idx_specific_conditions_natural_key,priority:1"`
	// DungeonID is the dungeon the battle belongs to
	DungeonID int64 `gorm:"column:dungeon_id;not null;index:idx_specific_conditions_natural_key,priority:2"`
	// Title is the text shown to the player
	Title string `gorm:"column:title;not null;size:128;index:idx_specific_conditions_natural_key,priority:3"`
}

// TableName specifies the table name for the SpecificCondition model
func (SpecificCondition) TableName() string {
	return "specific_conditions"
}

func (SpecificCondition) EntityName() string { return "SpecificCondition" }

func (c SpecificCondition) String() string { return c.Title }
