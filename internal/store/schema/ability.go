package schema

import "fmt"

// Ability represents the abilities table - one ability at one upgrade grade
type Ability struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AbilityID is the external ability id shared by every grade
	AbilityID int64 `gorm:"column:ability_id;not null;index:idx_abilities_natural_key,priority:1"`
	// Grade is the upgrade grade
	Grade int `gorm:"column:grade;not null;index:idx_abilities_natural_key,priority:2"`
	// Name is the display name
	Name string `gorm:"column:name;not null;size:64"`
	// Description is the in-game description
	Description string `gorm:"column:description;size:512"`
	// Rarity is the star rating
	Rarity int `gorm:"column:rarity;not null"`
	// CategoryID is the ability school
	CategoryID int `gorm:"column:category_id;not null"`
	// CategoryName is the display name of the school
	CategoryName string `gorm:"column:category_name;size:32"`
	// CategoryType is the school kind
	CategoryType int `gorm:"column:category_type;not null"`
	// TargetRange is the targeting mode
	TargetRange int `gorm:"column:target_range;not null"`
	// NextGrade is the grade reached by the next upgrade
	NextGrade int `gorm:"column:next_grade;not null"`
	// MaxGrade is the highest reachable grade
	MaxGrade int `gorm:"column:max_grade;not null"`
	// Arg1 is the only ability argument observed to be non-zero
	Arg1 int `gorm:"column:arg1;not null"`
	// RequiredGil holds domain.UnknownRequiredGil until a real cost is seen
	RequiredGil int `gorm:"column:required_gil;not null"`
	// SaleGil is the vendor price
	SaleGil int `gorm:"column:sale_gil;not null"`
}

// TableName specifies the table name for the Ability model
func (Ability) TableName() string {
	return "abilities"
}

func (Ability) EntityName() string { return "Ability" }

func (a Ability) String() string {
	return fmt.Sprintf("[%d*] %s %d/%d", a.Rarity, a.Name, a.Grade, a.MaxGrade)
}

func (a Ability) DisplayName() string { return a.Name }

func (a Ability) SearchID() any { return a.AbilityID }

// AbilityCost represents the ability_costs table - materials required to create an ability grade
type AbilityCost struct {
	// AbilityRowID references abilities.id
	AbilityRowID int64 `gorm:"column:ability_row_id;primaryKey;autoIncrement:false"`
	// MaterialID references materials.id
	MaterialID int64 `gorm:"column:material_id;primaryKey;autoIncrement:false"`
	// Count is the number of materials required
	Count int `gorm:"column:count;not null"`
}

// TableName specifies the table name for the AbilityCost model
func (AbilityCost) TableName() string {
	return "ability_costs"
}

func (AbilityCost) EntityName() string { return "AbilityCost" }

func (c AbilityCost) String() string {
	return fmt.Sprintf("%d x%d", c.MaterialID, c.Count)
}
