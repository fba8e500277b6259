package schema

import (
	"fmt"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
)

// Drop represents the drops table - a reward identity keyed by the external item id
type Drop struct {
	// ID is the external item id
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Name is filled lazily from other imported entities when the feed does not carry it
	Name string `gorm:"column:name;not null;default:'';size:64"`
}

// TableName specifies the table name for the Drop model
func (Drop) TableName() string {
	return "drops"
}

func (Drop) EntityName() string { return "Drop" }

func (d Drop) String() string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("%d", d.ID)
}

func (d Drop) DisplayName() string { return d.Name }

// DropAssociation represents the drop_associations table - a drop seen on an enemy in a battle
type DropAssociation struct {
	// EnemyRowID references enemies.id
	EnemyRowID int64 `gorm:"column:enemy_row_id;primaryKey;autoIncrement:false"`
	// DropID references drops.id
	DropID int64 `gorm:"column:drop_id;primaryKey;autoIncrement:false"`
	// BattleID references battles.id
	BattleID int64 `gorm:"column:battle_id;primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for the DropAssociation model
func (DropAssociation) TableName() string {
	return "drop_associations"
}

func (DropAssociation) EntityName() string { return "DropAssociation" }

func (d DropAssociation) String() string {
	return fmt.Sprintf("%d/%d/%d", d.EnemyRowID, d.DropID, d.BattleID)
}

// Prize represents the prizes table - a reward grant owned by exactly one dungeon or quest
type Prize struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DropID references drops.id
	DropID int64 `gorm:"column:drop_id;not null;index:idx_prizes_natural_key,priority:1"`
	// PrizeType is the reward category
	PrizeType domain.PrizeType `gorm:"column:prize_type;not null;index:idx_prizes_natural_key,priority:2"`
	// DungeonID is set for dungeon rewards
	DungeonID *int64 `gorm:"column:dungeon_id;index"`
	// QuestID is set for quest rewards
	QuestID *int64 `gorm:"column:quest_id;index"`
	// Name is the reward name at the time of capture
	Name string `gorm:"column:name;not null;size:64"`
	// Count is the number of items granted
	Count int `gorm:"column:count;not null"`
	// DropType is the item category reported by the feed
	DropType string `gorm:"column:drop_type;size:32"`
	// DispOrder is the display order within the bucket
	DispOrder int `gorm:"column:disp_order;not null"`
	// ImagePath is the client asset path without the /dff prefix
	ImagePath string `gorm:"column:image_path;size:128"`
}

// TableName specifies the table name for the Prize model
func (Prize) TableName() string {
	return "prizes"
}

func (Prize) EntityName() string { return "Prize" }

func (p Prize) String() string {
	return fmt.Sprintf("%s x%d (%s)", p.Name, p.Count, p.PrizeType)
}

func (p Prize) SearchID() any { return p.DropID }
