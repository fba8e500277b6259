package schema

import (
	"fmt"
	"time"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
)

// World represents the worlds table - a realm or a time-boxed event
type World struct {
	// ID is the external world id
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Name is the display name of the world
	Name string `gorm:"column:name;not null;size:128"`
	// SeriesID identifies the game series the world belongs to
	SeriesID int64 `gorm:"column:series_id;not null"`
	// OpenedAt is when the world became available
	OpenedAt *time.Time `gorm:"column:opened_at"`
	// ClosedAt is when the world stopped accepting new runs
	ClosedAt *time.Time `gorm:"column:closed_at"`
	// KeptOutAt is when the world disappears from the client
	KeptOutAt *time.Time `gorm:"column:kept_out_at"`
	// WorldType distinguishes realms from events
	WorldType domain.WorldType `gorm:"column:world_type;not null"`
}

// TableName specifies the table name for the World model
func (World) TableName() string {
	return "worlds"
}

func (World) EntityName() string { return "World" }

func (w World) String() string {
	return fmt.Sprintf("[%s] %s", w.WorldType, w.Name)
}

func (w World) DisplayName() string { return w.Name }

// Dungeon represents the dungeons table - a quest chain within a world
type Dungeon struct {
	// ID is the external dungeon id
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// WorldID references the owning world
	WorldID int64 `gorm:"column:world_id;not null;index"`
	// SeriesID identifies the game series the dungeon belongs to
	SeriesID int64 `gorm:"column:series_id;not null"`
	// Name is the display name of the dungeon
	Name string `gorm:"column:name;not null;size:128"`
	// DungeonType is Classic or Elite
	DungeonType domain.DungeonType `gorm:"column:dungeon_type;not null"`
	// ChallengeLevel is the recommended party level
	ChallengeLevel int `gorm:"column:challenge_level;not null"`
	// TotalStamina is zero until a payload carrying it has been imported
	TotalStamina int `gorm:"column:total_stamina;not null"`
	// OpenedAt is when the dungeon became available
	OpenedAt *time.Time `gorm:"column:opened_at"`
	// ClosedAt is when the dungeon closed
	ClosedAt *time.Time `gorm:"column:closed_at"`
	// Prologue is the narrative text shown before the first battle
	Prologue string `gorm:"column:prologue;size:2048"`
	// Epilogue is the narrative text shown after the last battle
	Epilogue string `gorm:"column:epilogue;size:2048"`
	// BackgroundImagePath is the client asset path without the /dff prefix
	BackgroundImagePath string `gorm:"column:background_image_path;size:128"`
	// PrologueImagePath is the client asset path without the /dff prefix
	PrologueImagePath string `gorm:"column:prologue_image_path;size:128"`
	// EpilogueImagePath is the client asset path without the /dff prefix
	EpilogueImagePath string `gorm:"column:epilogue_image_path;size:128"`
}

// TableName specifies the table name for the Dungeon model
func (Dungeon) TableName() string {
	return "dungeons"
}

func (Dungeon) EntityName() string { return "Dungeon" }

func (d Dungeon) String() string {
	return fmt.Sprintf("%s (%s) [%d]", d.Name, d.DungeonType, d.ChallengeLevel)
}

func (d Dungeon) DisplayName() string { return d.Name }
