package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
)

// Input is the source of one payload. Payload takes precedence over FilePath.
type Input struct {
	Payload  json.RawMessage
	FilePath string
}

// Empty reports whether neither a payload nor a file path was given
func (in Input) Empty() bool {
	return len(in.Payload) == 0 && in.FilePath == ""
}

// Int decodes a JSON number or a numeric string; null and "" decode as zero
type Int int64

func (n *Int) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	switch r.Type {
	case gjson.Null:
		*n = 0
	case gjson.Number:
		*n = Int(r.Int())
	case gjson.String:
		s := strings.TrimSpace(r.Str)
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("cannot decode %q as an integer: %w", r.Str, err)
		}
		*n = Int(v)
	default:
		return fmt.Errorf("cannot decode %s as an integer", r.Raw)
	}
	return nil
}

// Bool decodes true/false, 0/1 and their string forms
type Bool bool

func (b *Bool) UnmarshalJSON(data []byte) error {
	*b = Bool(gjson.ParseBytes(data).Bool())
	return nil
}

// Text decodes a JSON string or a bare number as text
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	if r.Type == gjson.Null {
		*t = ""
		return nil
	}
	*t = Text(r.String())
	return nil
}

// OneOrMany decodes either a single object or a list of objects
type OneOrMany[T any] []T

func (m *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	if r.Type == gjson.Null {
		*m = nil
		return nil
	}
	if r.IsArray() {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*m = items
		return nil
	}
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*m = OneOrMany[T]{item}
	return nil
}

// Entries decodes a list, or the values of an index-keyed object in document order
type Entries[T any] []T

func (e *Entries[T]) UnmarshalJSON(data []byte) error {
	var (
		items []T
		err   error
	)
	gjson.ParseBytes(data).ForEach(func(_, value gjson.Result) bool {
		var item T
		if err = json.Unmarshal([]byte(value.Raw), &item); err != nil {
			return false
		}
		items = append(items, item)
		return true
	})
	if err != nil {
		return err
	}
	*e = items
	return nil
}

// /dff/world/dungeons
type worldPayload struct {
	World    *worldRecord    `json:"world"`
	Dungeons []dungeonRecord `json:"dungeons"`
}

type worldRecord struct {
	ID        Int    `json:"id"`
	Name      string `json:"name"`
	SeriesID  Int    `json:"series_id"`
	Type      Int    `json:"type"`
	OpenedAt  Int    `json:"opened_at"`
	ClosedAt  Int    `json:"closed_at"`
	KeptOutAt Int    `json:"kept_out_at"`
}

type dungeonRecord struct {
	ID                  Int                      `json:"id"`
	WorldID             Int                      `json:"world_id"`
	SeriesID            Int                      `json:"series_id"`
	Name                string                   `json:"name"`
	Type                Int                      `json:"type"`
	ChallengeLevel      Int                      `json:"challenge_level"`
	TotalStamina        Int                      `json:"total_stamina"`
	OpenedAt            Int                      `json:"opened_at"`
	ClosedAt            Int                      `json:"closed_at"`
	Prologue            string                   `json:"prologue"`
	Epilogue            string                   `json:"epilogue"`
	BackgroundImagePath string                   `json:"background_image_path"`
	PrologueImagePath   string                   `json:"prologue_image_path"`
	EpilogueImagePath   string                   `json:"epilogue_image_path"`
	Prizes              map[string][]prizeRecord `json:"prizes"`
	Captures            []captureRecord          `json:"captures"`
}

type prizeRecord struct {
	ID        Int    `json:"id"`
	Name      string `json:"name"`
	Num       *Int   `json:"num"`
	TypeName  string `json:"type_name"`
	DispOrder Int    `json:"disp_order"`
	ImagePath string `json:"image_path"`
}

type captureRecord struct {
	TipBattle struct {
		ID Int `json:"id"`
	} `json:"tip_battle"`
	SpScores []struct {
		Title string `json:"title"`
	} `json:"sp_scores"`
}

// /dff/world/battles
type battleListPayload struct {
	Battles []battleRecord `json:"battles"`
}

type battleRecord struct {
	ID        Int    `json:"id"`
	DungeonID Int    `json:"dungeon_id"`
	Name      string `json:"name"`
	RoundNum  Int    `json:"round_num"`
	HasBoss   Bool   `json:"has_boss"`
	Stamina   Int    `json:"stamina"`
}

// get_battle_init_data
type battleDetailPayload struct {
	Battle *struct {
		BattleID Int `json:"battle_id"`
		Rounds   []struct {
			Enemy []enemyGroup `json:"enemy"`
		} `json:"rounds"`
		Event json.RawMessage `json:"event"`
	} `json:"battle"`
}

type enemyGroup struct {
	IsSpEnemy Bool         `json:"is_sp_enemy"`
	Children  []enemyChild `json:"children"`
}

type enemyChild struct {
	Params       OneOrMany[map[string]json.RawMessage] `json:"params"`
	DropItemList []struct {
		ItemID Int `json:"item_id"`
	} `json:"drop_item_list"`
	// Fields is the whole child object; params are merged over it
	Fields map[string]json.RawMessage `json:"-"`
}

func (c *enemyChild) UnmarshalJSON(data []byte) error {
	type plain enemyChild
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &decoded.Fields); err != nil {
		return err
	}
	*c = enemyChild(decoded)
	return nil
}

// enemyRecord is one enemy child with one of its parameter blocks merged in
type enemyRecord struct {
	EnemyID       Int              `json:"enemy_id"`
	ParamID       Int              `json:"id"`
	DispName      string           `json:"disp_name"`
	BreedID       Int              `json:"breed_id"`
	Size          Int              `json:"size"`
	Lv            Int              `json:"lv"`
	MaxHP         Int              `json:"max_hp"`
	Acc           Int              `json:"acc"`
	Atk           Int              `json:"atk"`
	Critical      Int              `json:"critical"`
	Def           Int              `json:"def"`
	Eva           Int              `json:"eva"`
	Looking       Int              `json:"looking"`
	Matk          Int              `json:"matk"`
	Mdef          Int              `json:"mdef"`
	Mnd           Int              `json:"mnd"`
	Spd           Int              `json:"spd"`
	Exp           Int              `json:"exp"`
	DefAttributes []attributeTuple `json:"def_attributes"`
}

type attributeTuple struct {
	AttributeID Int `json:"attribute_id"`
	Factor      Int `json:"factor"`
}

type battleEvent struct {
	EventID   *Int    `json:"event_id"`
	EventType *string `json:"event_type"`
}

// win_battle
type winBattlePayload struct {
	BattleID *Int `json:"battle_id"`
	Result   *struct {
		Score *struct {
			General  []conditionRecord `json:"general"`
			Specific []conditionRecord `json:"specific"`
		} `json:"score"`
	} `json:"result"`
}

type conditionRecord struct {
	ID       Int    `json:"id"`
	Title    string `json:"title"`
	CodeName string `json:"code_name"`
}

// /dff/party/list
type partyPayload struct {
	Equipments []relicRecord     `json:"equipments"`
	Materials  []materialRecord  `json:"materials"`
	Buddies    []characterRecord `json:"buddies"`
}

// /dff/
type dffPayload struct {
	Buddy     []characterRecord `json:"buddy"`
	Equipment []relicRecord     `json:"equipment"`
}

// /dff/equipment/enhance and /dff/equipment/evolve
type enhanceEvolvePayload struct {
	Old *relicRecord `json:"old_src_user_equipment"`
	New *relicRecord `json:"new_src_user_equipment"`
}

// /dff/grow_egg/use
type growPayload struct {
	Buddy *characterRecord `json:"buddy"`
}

// gearStats are the stats a piece of equipment adds to its wearer
type gearStats struct {
	Acc  Int `json:"acc"`
	Atk  Int `json:"atk"`
	Def  Int `json:"def"`
	Eva  Int `json:"eva"`
	Matk Int `json:"matk"`
	Mdef Int `json:"mdef"`
	Mnd  Int `json:"mnd"`
}

// seriesGearStats are gearStats applied inside the gear's own series
type seriesGearStats struct {
	SeriesAcc  Int `json:"series_acc"`
	SeriesAtk  Int `json:"series_atk"`
	SeriesDef  Int `json:"series_def"`
	SeriesEva  Int `json:"series_eva"`
	SeriesMatk Int `json:"series_matk"`
	SeriesMdef Int `json:"series_mdef"`
	SeriesMnd  Int `json:"series_mnd"`
}

func (s gearStats) minus(o gearStats) gearStats {
	return gearStats{
		Acc:  s.Acc - o.Acc,
		Atk:  s.Atk - o.Atk,
		Def:  s.Def - o.Def,
		Eva:  s.Eva - o.Eva,
		Matk: s.Matk - o.Matk,
		Mdef: s.Mdef - o.Mdef,
		Mnd:  s.Mnd - o.Mnd,
	}
}

func (s gearStats) asSeries() seriesGearStats {
	return seriesGearStats{
		SeriesAcc:  s.Acc,
		SeriesAtk:  s.Atk,
		SeriesDef:  s.Def,
		SeriesEva:  s.Eva,
		SeriesMatk: s.Matk,
		SeriesMdef: s.Mdef,
		SeriesMnd:  s.Mnd,
	}
}

func (s seriesGearStats) minus(o seriesGearStats) seriesGearStats {
	return seriesGearStats{
		SeriesAcc:  s.SeriesAcc - o.SeriesAcc,
		SeriesAtk:  s.SeriesAtk - o.SeriesAtk,
		SeriesDef:  s.SeriesDef - o.SeriesDef,
		SeriesEva:  s.SeriesEva - o.SeriesEva,
		SeriesMatk: s.SeriesMatk - o.SeriesMatk,
		SeriesMdef: s.SeriesMdef - o.SeriesMdef,
		SeriesMnd:  s.SeriesMnd - o.SeriesMnd,
	}
}

type relicRecord struct {
	gearStats
	seriesGearStats

	// ID is the player's inventory id, only used to match equipped gear
	ID                         Int    `json:"id"`
	EquipmentID                Int    `json:"equipment_id"`
	Level                      Int    `json:"level"`
	Rarity                     Int    `json:"rarity"`
	Name                       string `json:"name"`
	BaseRarity                 Int    `json:"base_rarity"`
	LevelMax                   Int    `json:"level_max"`
	EvolutionNum               Int    `json:"evolution_num"`
	MaxEvolutionNum            Int    `json:"max_evolution_num"`
	CanEvolvePotentially       Bool   `json:"can_evolve_potentially"`
	IsMaxEvolutionNum          Bool   `json:"is_max_evolution_num"`
	SeriesID                   Int    `json:"series_id"`
	ImagePath                  string `json:"image_path"`
	DetailImagePath            string `json:"detail_image_path"`
	Description                string `json:"description"`
	HasSomeonesSoulStrike      Bool   `json:"has_someones_soul_strike"`
	HasSoulStrike              Bool   `json:"has_soul_strike"`
	SoulStrikeID               *Int   `json:"soul_strike_id"`
	RequiredEnhancementBaseGil *Int   `json:"required_enhancement_base_gil"`
	RequiredEvolutionGil       *Int   `json:"required_evolution_gil"`
	SaleGil                    Int    `json:"sale_gil"`
	CategoryID                 Int    `json:"category_id"`
	CategoryName               string `json:"category_name"`
	EquipmentType              Int    `json:"equipment_type"`
	HP                         Int    `json:"hp"`
	Critical                   Int    `json:"critical"`
	SeriesHP                   Int    `json:"series_hp"`
}

type materialRecord struct {
	ID          Int    `json:"id"`
	Name        string `json:"name"`
	Rarity      Int    `json:"rarity"`
	SaleGil     Int    `json:"sale_gil"`
	Description string `json:"description"`
}

type characterRecord struct {
	gearStats
	seriesGearStats

	BuddyID           Int                      `json:"buddy_id"`
	Level             Int                      `json:"level"`
	Name              string                   `json:"name"`
	JobName           string                   `json:"job_name"`
	Description       string                   `json:"description"`
	SeriesID          Int                      `json:"series_id"`
	ImagePath         string                   `json:"image_path"`
	HP                Int                      `json:"hp"`
	Spd               Int                      `json:"spd"`
	SeriesHP          Int                      `json:"series_hp"`
	SeriesSpd         Int                      `json:"series_spd"`
	AccessoryID       Int                      `json:"accessory_id"`
	ArmorID           Int                      `json:"armor_id"`
	WeaponID          Int                      `json:"weapon_id"`
	EquipmentCategory Entries[equipCapability]   `json:"equipment_category"`
	AbilityCategory   Entries[abilityCapability] `json:"ability_category"`
}

type equipCapability struct {
	CategoryID    Int  `json:"category_id"`
	EquipmentType Int  `json:"equipment_type"`
	Factor        Text `json:"factor"`
}

type abilityCapability struct {
	CategoryID Int `json:"category_id"`
	Rarity     Int `json:"rarity"`
}

// /dff/ability/create and the recipe feeds
type recipePayload struct {
	Recipe map[string]map[string]abilityRecord `json:"recipe"`
}

// /dff/ability/grow
type abilityUpgradePayload struct {
	UpgradedAbility *abilityRecord `json:"upgraded_ability"`
}

type abilityRecord struct {
	AbilityID      Int            `json:"ability_id"`
	Grade          Int            `json:"grade"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Rarity         Int            `json:"rarity"`
	CategoryID     Int            `json:"category_id"`
	CategoryName   string         `json:"category_name"`
	CategoryType   Int            `json:"category_type"`
	TargetRange    Int            `json:"target_range"`
	NextGrade      Int            `json:"next_grade"`
	MaxGrade       Int            `json:"max_grade"`
	Arg1           Int            `json:"arg1"`
	Arg2           Int            `json:"arg2"`
	Arg3           Int            `json:"arg3"`
	RequiredGil    *Int           `json:"required_gil"`
	SaleGil        Int            `json:"sale_gil"`
	MaterialID2Num map[string]Int `json:"material_id_2_num"`
}

// /dff/event/quest/list
type questPayload struct {
	Quests             []questRecord   `json:"quests"`
	SpecialQuestPrizes json.RawMessage `json:"special_quest_prizes"`
}

type questRecord struct {
	ID                     Int           `json:"id"`
	Title                  string        `json:"title"`
	Description            string        `json:"description"`
	AchieveCondDescription string        `json:"achieve_cond_description"`
	AchieveType            Int           `json:"achieve_type"`
	AchieveTypeName        string        `json:"achieve_type_name"`
	HintTitle              string        `json:"hint_title"`
	HintMsg                string        `json:"hint_msg"`
	Prizes                 []prizeRecord `json:"prizes"`
}

// unixTime converts a payload timestamp; zero means unknown
func unixTime(n Int) *time.Time {
	if n <= 0 {
		return nil
	}
	t := time.Unix(int64(n), 0).UTC()
	return &t
}

// stripImagePrefix removes the client asset prefix from image paths
func stripImagePrefix(path string) string {
	return strings.ReplaceAll(path, domain.ImagePathPrefix, "")
}

// isEmptyJSON reports whether raw is absent, null, or an empty value
func isEmptyJSON(raw json.RawMessage) bool {
	r := gjson.ParseBytes(raw)
	switch {
	case !r.Exists(), r.Type == gjson.Null:
		return true
	case r.IsArray():
		return len(r.Array()) == 0
	case r.IsObject():
		return len(r.Map()) == 0
	case r.Type == gjson.String:
		return r.Str == ""
	case r.Type == gjson.False:
		return true
	case r.Type == gjson.Number:
		return r.Num == 0
	default:
		return false
	}
}
