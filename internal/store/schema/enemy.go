package schema

import (
	"fmt"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
)

// Enemy represents the enemies table - one parametrized enemy appearance.
// enemy_id groups the same creature, param_id identifies the stat block.
type Enemy struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EnemyID groups the same creature across levels and instances
	EnemyID int64 `gorm:"column:enemy_id;not null;index"`
	// ParamID identifies the stat block
	ParamID int64 `gorm:"column:param_id;not null;index:idx_enemies_natural_key,priority:1"`
	// Lv is the enemy level
	Lv int `gorm:"column:lv;not null;index:idx_enemies_natural_key,priority:2"`
	// Name is the display name from the battle payload
	Name string `gorm:"column:name;not null;size:64"`
	// BreedID is the enemy family
	BreedID int `gorm:"column:breed_id;not null"`
	// Size is the sprite size class
	Size int `gorm:"column:size;not null"`
	// IsSpEnemy is set for bosses
	IsSpEnemy bool `gorm:"column:is_sp_enemy;not null"`
	// EventID is the event the battle was captured in, if any
	EventID *int64 `gorm:"column:event_id"`
	// EventType is the event kind the battle was captured in, if any
	EventType *string `gorm:"column:event_type;size:32"`

	MaxHP    int `gorm:"column:max_hp;not null"`
	Acc      int `gorm:"column:acc;not null"`
	Atk      int `gorm:"column:atk;not null"`
	Critical int `gorm:"column:critical;not null"`
	Defense  int `gorm:"column:defense;not null"`
	Eva      int `gorm:"column:eva;not null"`
	Looking  int `gorm:"column:looking;not null"`
	Matk     int `gorm:"column:matk;not null"`
	Mdef     int `gorm:"column:mdef;not null"`
	Mnd      int `gorm:"column:mnd;not null"`
	Spd      int `gorm:"column:spd;not null"`
	Exp      int `gorm:"column:exp;not null"`
}

// TableName specifies the table name for the Enemy model
func (Enemy) TableName() string {
	return "enemies"
}

func (Enemy) EntityName() string { return "Enemy" }

func (e Enemy) String() string {
	return fmt.Sprintf("%s (%d)", e.Name, e.Lv)
}

func (e Enemy) DisplayName() string { return e.Name }

// SearchID is param_id because enemy_id may collide with elite dungeon ids
func (e Enemy) SearchID() any { return e.ParamID }

// EnemyBattle represents the enemy_battles association table
type EnemyBattle struct {
	// EnemyRowID references enemies.id
	EnemyRowID int64 `gorm:"column:enemy_row_id;primaryKey;autoIncrement:false"`
	// BattleID references battles.id
	BattleID int64 `gorm:"column:battle_id;primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for the EnemyBattle model
func (EnemyBattle) TableName() string {
	return "enemy_battles"
}

func (EnemyBattle) EntityName() string { return "EnemyBattle" }

func (e EnemyBattle) String() string {
	return fmt.Sprintf("%d/%d", e.EnemyRowID, e.BattleID)
}

// Attribute represents the attributes table - an elemental or status resistance fact
type Attribute struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AttributeID is the element or status kind
	AttributeID int `gorm:"column:attribute_id;not null;index:idx_attributes_natural_key,priority:1"`
	// Factor is the resistance factor
	Factor int `gorm:"column:factor;not null;index:idx_attributes_natural_key,priority:2"`
}

// TableName specifies the table name for the Attribute model
func (Attribute) TableName() string {
	return "attributes"
}

func (Attribute) EntityName() string { return "Attribute" }

func (a Attribute) String() string {
	return fmt.Sprintf("%s: %s", domain.AttributeName(a.AttributeID), domain.FactorName(a.AttributeID, a.Factor))
}

// AttributeAssociation represents the attribute_associations table.
// Resistance profiles are shared by param_id, so there is no foreign key to enemies.
type AttributeAssociation struct {
	// AttributeRowID references attributes.id
	AttributeRowID int64 `gorm:"column:attribute_row_id;primaryKey;autoIncrement:false"`
	// ParamID is the enemy stat block the resistance applies to
	ParamID int64 `gorm:"column:param_id;primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for the AttributeAssociation model
func (AttributeAssociation) TableName() string {
	return "attribute_associations"
}

func (AttributeAssociation) EntityName() string { return "AttributeAssociation" }

func (a AttributeAssociation) String() string {
	return fmt.Sprintf("%d/%d", a.AttributeRowID, a.ParamID)
}
