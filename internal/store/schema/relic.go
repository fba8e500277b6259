package schema

import (
	"fmt"
	"strings"
)

// Relic represents the relics table - one owned equipment piece at a level and rarity
type Relic struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EquipmentID is the external equipment id
	EquipmentID int64 `gorm:"column:equipment_id;not null;index:idx_relics_natural_key,priority:1"`
	// Level is the enhancement level
	Level int `gorm:"column:level;not null;index:idx_relics_natural_key,priority:2"`
	// Rarity is the current star rating
	Rarity int `gorm:"column:rarity;not null;index:idx_relics_natural_key,priority:3"`
	// Name is the display name without the evolution marker
	Name string `gorm:"column:name;not null;size:64"`
	// BaseRarity is the star rating before any evolution
	BaseRarity int `gorm:"column:base_rarity;not null"`
	// LevelMax is the highest level at the current rarity
	LevelMax int `gorm:"column:level_max;not null"`
	// EvolutionNum is the number of evolutions applied
	EvolutionNum int `gorm:"column:evolution_num;not null"`
	// MaxEvolutionNum is the number of evolutions allowed
	MaxEvolutionNum int `gorm:"column:max_evolution_num;not null"`
	// CanEvolvePotentially is set when the relic may evolve
	CanEvolvePotentially bool `gorm:"column:can_evolve_potentially;not null"`
	// IsMaxEvolutionNum is set when no evolution is left
	IsMaxEvolutionNum bool `gorm:"column:is_max_evolution_num;not null"`
	// SeriesID identifies the game series for synergy bonuses
	SeriesID int64 `gorm:"column:series_id;not null"`
	// ImagePath is the client asset path without the /dff prefix
	ImagePath string `gorm:"column:image_path;size:128"`
	// DetailImagePath is the client asset path without the /dff prefix
	DetailImagePath string `gorm:"column:detail_image_path;size:128"`
	// Description is the in-game description
	Description string `gorm:"column:description;size:512"`
	// HasSomeonesSoulStrike is set when the soul strike is bound to a character
	HasSomeonesSoulStrike bool `gorm:"column:has_someones_soul_strike;not null"`
	// HasSoulStrike is set when the relic grants a soul strike
	HasSoulStrike bool `gorm:"column:has_soul_strike;not null"`
	// SoulStrikeID is the granted soul strike
	SoulStrikeID *int64 `gorm:"column:soul_strike_id"`
	// RequiredEnhancementBaseGil is the base gil cost of an enhancement
	RequiredEnhancementBaseGil *int `gorm:"column:required_enhancement_base_gil"`
	// RequiredEvolutionGil is the gil cost of an evolution
	RequiredEvolutionGil *int `gorm:"column:required_evolution_gil"`
	// SaleGil is the vendor price
	SaleGil int `gorm:"column:sale_gil;not null"`
	// CategoryID is the equipment category
	CategoryID int `gorm:"column:category_id;not null"`
	// CategoryName is the display name of the category
	CategoryName string `gorm:"column:category_name;size:32"`
	// EquipmentType is weapon, armor or accessory
	EquipmentType int `gorm:"column:equipment_type;not null"`

	HP       int `gorm:"column:hp;not null"`
	Acc      int `gorm:"column:acc;not null"`
	Atk      int `gorm:"column:atk;not null"`
	Critical int `gorm:"column:critical;not null"`
	Defense  int `gorm:"column:defense;not null"`
	Eva      int `gorm:"column:eva;not null"`
	Matk     int `gorm:"column:matk;not null"`
	Mdef     int `gorm:"column:mdef;not null"`
	Mnd      int `gorm:"column:mnd;not null"`

	SeriesHP   int `gorm:"column:series_hp;not null"`
	SeriesAcc  int `gorm:"column:series_acc;not null"`
	SeriesAtk  int `gorm:"column:series_atk;not null"`
	SeriesDef  int `gorm:"column:series_def;not null"`
	SeriesEva  int `gorm:"column:series_eva;not null"`
	SeriesMatk int `gorm:"column:series_matk;not null"`
	SeriesMdef int `gorm:"column:series_mdef;not null"`
	SeriesMnd  int `gorm:"column:series_mnd;not null"`
}

// TableName specifies the table name for the Relic model
func (Relic) TableName() string {
	return "relics"
}

func (Relic) EntityName() string { return "Relic" }

func (r Relic) String() string {
	s := fmt.Sprintf("[%d*] %s", r.Rarity, r.Name)
	if r.EvolutionNum > 0 {
		s += " " + strings.Repeat("+", r.EvolutionNum)
	}
	return s + fmt.Sprintf(" %d/%d", r.Level, r.LevelMax)
}

func (r Relic) DisplayName() string { return r.Name }

func (r Relic) SearchID() any { return r.EquipmentID }
