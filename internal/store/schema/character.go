package schema

import (
	"fmt"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
)

// Character represents the characters table - one character snapshot per level
type Character struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BuddyID is the external character id
	BuddyID int64 `gorm:"column:buddy_id;not null;index:idx_characters_natural_key,priority:1"`
	// Level is the character level of the snapshot
	Level int `gorm:"column:level;not null;index:idx_characters_natural_key,priority:2"`
	// Name is the display name; the Keeper job is shown as Tyro
	Name string `gorm:"column:name;not null;size:32"`
	// JobName is the class name
	JobName string `gorm:"column:job_name;not null;size:32"`
	// Description is the in-game description
	Description string `gorm:"column:description;size:512"`
	// SeriesID identifies the game series for synergy bonuses
	SeriesID int64 `gorm:"column:series_id;not null"`
	// ImagePath is the client asset path without the /dff prefix
	ImagePath string `gorm:"column:image_path;size:128"`

	HP      int `gorm:"column:hp;not null"`
	Atk     int `gorm:"column:atk;not null"`
	Defense int `gorm:"column:defense;not null"`
	Acc     int `gorm:"column:acc;not null"`
	Eva     int `gorm:"column:eva;not null"`
	Matk    int `gorm:"column:matk;not null"`
	Mdef    int `gorm:"column:mdef;not null"`
	Mnd     int `gorm:"column:mnd;not null"`
	Spd     int `gorm:"column:spd;not null"`

	SeriesHP   int `gorm:"column:series_hp;not null"`
	SeriesAtk  int `gorm:"column:series_atk;not null"`
	SeriesDef  int `gorm:"column:series_def;not null"`
	SeriesAcc  int `gorm:"column:series_acc;not null"`
	SeriesEva  int `gorm:"column:series_eva;not null"`
	SeriesMatk int `gorm:"column:series_matk;not null"`
	SeriesMdef int `gorm:"column:series_mdef;not null"`
	SeriesMnd  int `gorm:"column:series_mnd;not null"`
	SeriesSpd  int `gorm:"column:series_spd;not null"`
}

// TableName specifies the table name for the Character model
func (Character) TableName() string {
	return "characters"
}

func (Character) EntityName() string { return "Character" }

func (c Character) String() string {
	return fmt.Sprintf("%s (%d)", c.Name, c.Level)
}

func (c Character) DisplayName() string { return c.Name }

func (c Character) SearchID() any { return c.BuddyID }

// CharacterStatColumns are the columns reconciled by diff-update on an existing character snapshot
var CharacterStatColumns = []string{
	"hp", "atk", "defense", "acc", "eva", "matk", "mdef", "mnd", "spd",
	"series_hp", "series_atk", "series_def", "series_acc", "series_eva",
	"series_matk", "series_mdef", "series_mnd", "series_spd",
}

// CharacterEquip represents the character_equips table - an equipment category a character can use
type CharacterEquip struct {
	// CategoryID is the equipment category
	CategoryID int `gorm:"column:category_id;primaryKey;autoIncrement:false"`
	// EquipmentType is weapon, armor or accessory
	EquipmentType int `gorm:"column:equipment_type;primaryKey;autoIncrement:false"`
	// BuddyID is the external character id
	BuddyID int64 `gorm:"column:buddy_id;primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for the CharacterEquip model
func (CharacterEquip) TableName() string {
	return "character_equips"
}

func (CharacterEquip) EntityName() string { return "CharacterEquip" }

func (e CharacterEquip) String() string {
	return domain.EquipCategoryName(e.CategoryID)
}

// SearchID is nil because equips have no page of their own
func (e CharacterEquip) SearchID() any { return nil }

// CharacterAbility represents the character_abilities table - the highest ability rarity a character can use per school
type CharacterAbility struct {
	// CategoryID is the ability school
	CategoryID int `gorm:"column:category_id;primaryKey;autoIncrement:false"`
	// BuddyID is the external character id
	BuddyID int64 `gorm:"column:buddy_id;primaryKey;autoIncrement:false"`
	// Rarity is the highest usable ability rarity
	Rarity int `gorm:"column:rarity;not null"`
}

// TableName specifies the table name for the CharacterAbility model
func (CharacterAbility) TableName() string {
	return "character_abilities"
}

func (CharacterAbility) EntityName() string { return "CharacterAbility" }

func (a CharacterAbility) String() string {
	return fmt.Sprintf("[%d*] %s", a.Rarity, domain.AbilityCategoryName(a.CategoryID))
}

func (a CharacterAbility) SearchID() any { return nil }
