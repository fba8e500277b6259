package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// WorldType represents the kind of world a dungeon list belongs to
type WorldType int

const (
	WorldTypeRealm     WorldType = 1
	WorldTypeChallenge WorldType = 2
)

// String returns the display name of the world type
func (t WorldType) String() string {
	switch t {
	case WorldTypeRealm:
		return "Realm"
	case WorldTypeChallenge:
		return "Challenge"
	default:
		return fmt.Sprintf("Unknown WorldType[%d]", int(t))
	}
}

// DungeonType represents the difficulty class of a dungeon
type DungeonType int

const (
	DungeonTypeClassic DungeonType = 1
	DungeonTypeElite   DungeonType = 2
)

// String returns the display name of the dungeon type
func (t DungeonType) String() string {
	switch t {
	case DungeonTypeClassic:
		return "Classic"
	case DungeonTypeElite:
		return "Elite"
	default:
		return fmt.Sprintf("Unknown DungeonType[%d]", int(t))
	}
}

// PrizeType represents the reward category of a prize
type PrizeType int

const (
	PrizeTypeCompletion PrizeType = 1
	PrizeTypeFirstTime  PrizeType = 2
	PrizeTypeMastery    PrizeType = 3
	PrizeTypeQuest      PrizeType = 4
	PrizeTypeSoloRaid   PrizeType = 5
	PrizeTypeLeaderRaid PrizeType = 6
	PrizeTypeTimeBonus  PrizeType = 7
)

var prizeTypeNames = map[PrizeType]string{
	PrizeTypeCompletion: "Completion Reward",
	PrizeTypeFirstTime:  "First Time Reward",
	PrizeTypeMastery:    "Mastery Reward",
	PrizeTypeQuest:      "Quest Reward",
	PrizeTypeSoloRaid:   "Solo Raid Reward",
	PrizeTypeLeaderRaid: "Leader Raid Reward",
	PrizeTypeTimeBonus:  "Time Bonus Reward",
}

// String returns the display name of the prize type
func (t PrizeType) String() string {
	if name, ok := prizeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown PrizeType[%d]", int(t))
}

// ParsePrizeType parses the bucket key used by the dungeon feed ("1", "2", ...)
func ParsePrizeType(s string) (PrizeType, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid prize type %q: %w", s, err)
	}
	t := PrizeType(n)
	if _, ok := prizeTypeNames[t]; !ok {
		return 0, fmt.Errorf("unknown prize type %d", n)
	}
	return t, nil
}

// EquipmentType represents the slot of an equipment category
type EquipmentType int

const (
	EquipmentTypeWeapon    EquipmentType = 1
	EquipmentTypeArmor     EquipmentType = 2
	EquipmentTypeAccessory EquipmentType = 3
)

var equipCategoryNames = map[int]string{
	1: "Dagger", 2: "Sword", 3: "Katana", 4: "Axe", 5: "Hammer",
	6: "Spear", 7: "Fist", 8: "Rod", 9: "Staff", 10: "Bow",
	11: "Instrument", 12: "Whip", 13: "Thrown", 14: "Book", 15: "Gun",
	30: "Ball",
	50: "Shield", 51: "Hat", 52: "Helm", 53: "Light Armor", 54: "Armor",
	55: "Robe", 56: "Bracer",
	80: "Accessory",
}

var abilityCategoryNames = map[int]string{
	1: "Black Magic", 2: "White Magic", 3: "Summoning", 4: "Spellblade",
	5: "Combat", 6: "Support", 7: "Celerity", 8: "Dragoon", 9: "Monk",
	10: "Thief", 11: "Knight", 12: "Samurai", 13: "Ninja", 14: "Bard",
}

// EquipCategoryName returns the display name of an equipment category id
func EquipCategoryName(categoryID int) string {
	if name, ok := equipCategoryNames[categoryID]; ok {
		return name
	}
	return fmt.Sprintf("Unknown EquipmentCategory[%d]", categoryID)
}

// AbilityCategoryName returns the display name of an ability category id
func AbilityCategoryName(categoryID int) string {
	if name, ok := abilityCategoryNames[categoryID]; ok {
		return name
	}
	return fmt.Sprintf("Unknown AbilityCategory[%d]", categoryID)
}

// EntityKind tags the entity a lookup resolved to
type EntityKind string

const (
	KindAbout     EntityKind = "about"
	KindMaterial  EntityKind = "material"
	KindWorld     EntityKind = "world"
	KindDungeon   EntityKind = "dungeon"
	KindAbility   EntityKind = "ability"
	KindRelic     EntityKind = "relic"
	KindBattle    EntityKind = "battle"
	KindEnemy     EntityKind = "enemy"
	KindCharacter EntityKind = "character"
	KindQuest     EntityKind = "quest"
	KindLog       EntityKind = "log"
)

// IDPrecedence is the order in which id spaces are searched when an id is ambiguous.
// Downstream links depend on this order.
var IDPrecedence = []EntityKind{
	KindMaterial,
	KindWorld,
	KindDungeon,
	KindAbility,
	KindRelic,
	KindBattle,
	KindEnemy,
	KindCharacter,
}

// Category is a listable entity category
type Category string

const (
	CategoryMaterial  Category = "material"
	CategoryAbility   Category = "ability"
	CategoryEnemy     Category = "enemy"
	CategoryRelic     Category = "relic"
	CategoryWorld     Category = "world"
	CategoryDungeon   Category = "dungeon"
	CategoryLog       Category = "log"
	CategoryCharacter Category = "character"
	CategoryQuest     Category = "quest"
)

// IsValidCategory checks if a category can be listed
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryMaterial, CategoryAbility, CategoryEnemy, CategoryRelic,
		CategoryWorld, CategoryDungeon, CategoryLog, CategoryCharacter, CategoryQuest:
		return true
	default:
		return false
	}
}
