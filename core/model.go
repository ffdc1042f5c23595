package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Alignment is one of the nine D&D alignments
type Alignment string

const (
	LawfulGood     Alignment = "lawful_good"
	NeutralGood    Alignment = "neutral_good"
	ChaoticGood    Alignment = "chaotic_good"
	LawfulNeutral  Alignment = "lawful_neutral"
	TrueNeutral    Alignment = "true_neutral"
	ChaoticNeutral Alignment = "chaotic_neutral"
	LawfulEvil     Alignment = "lawful_evil"
	NeutralEvil    Alignment = "neutral_evil"
	ChaoticEvil    Alignment = "chaotic_evil"
)

var Alignments = []Alignment{
	LawfulGood, NeutralGood, ChaoticGood,
	LawfulNeutral, TrueNeutral, ChaoticNeutral,
	LawfulEvil, NeutralEvil, ChaoticEvil,
}

func (a Alignment) Valid() bool {
	for _, v := range Alignments {
		if a == v {
			return true
		}
	}
	return false
}

// HitDie is the per-class die size, e.g. "d8"
type HitDie string

const (
	D6  HitDie = "d6"
	D8  HitDie = "d8"
	D10 HitDie = "d10"
	D12 HitDie = "d12"
)

func (h HitDie) Valid() bool {
	switch h {
	case D6, D8, D10, D12:
		return true
	}
	return false
}

// HitDieFromSize converts a numeric die size (as served by SRD APIs) to a HitDie
func HitDieFromSize(size int) HitDie {
	return HitDie(fmt.Sprintf("d%d", size))
}

type ItemCategory string

const (
	ItemWeapon ItemCategory = "weapon"
	ItemArmor  ItemCategory = "armor"
	ItemGear   ItemCategory = "gear"
	ItemTool   ItemCategory = "tool"
)

func (c ItemCategory) Valid() bool {
	switch c {
	case ItemWeapon, ItemArmor, ItemGear, ItemTool:
		return true
	}
	return false
}

type SpellSchool string

const (
	Abjuration    SpellSchool = "abjuration"
	Conjuration   SpellSchool = "conjuration"
	Divination    SpellSchool = "divination"
	Enchantment   SpellSchool = "enchantment"
	Evocation     SpellSchool = "evocation"
	Illusion      SpellSchool = "illusion"
	Necromancy    SpellSchool = "necromancy"
	Transmutation SpellSchool = "transmutation"
)

func (s SpellSchool) Valid() bool {
	switch s {
	case Abjuration, Conjuration, Divination, Enchantment, Evocation, Illusion, Necromancy, Transmutation:
		return true
	}
	return false
}

// AbilityBonuses maps an ability name ("strength", ...) to a racial bonus
// stored as a json column
type AbilityBonuses map[string]int

func (b AbilityBonuses) Value() (driver.Value, error) {
	if b == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (b *AbilityBonuses) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*b = AbilityBonuses{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AbilityBonuses", src)
	}
	return json.Unmarshal(raw, b)
}

// ListOptions is the raw list query shared by every collection endpoint
type ListOptions struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	OrderBy  string `json:"orderBy"`
	Filter   string `json:"filter"`
}

// Page is one page of a collection
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// CharacterCreate is the input of CharacterService.Create
type CharacterCreate struct {
	Name             string
	ClassID          string
	SubclassID       *string
	SpeciesID        string
	BackgroundID     string
	Alignment        Alignment
	Level            int
	ExperiencePoints int
	AbilityScores    AbilityScore
}

// CharacterPatch is a partial update. nil fields are left unchanged,
// an empty SubclassID clears the subclass.
type CharacterPatch struct {
	Name               *string
	Alignment          *Alignment
	Level              *int
	ExperiencePoints   *int
	ClassID            *string
	SubclassID         *string
	SpeciesID          *string
	BackgroundID       *string
	CurrentHitPoints   *int
	TemporaryHitPoints *int
	Inspiration        *bool
}

type CharacterItemPatch struct {
	Quantity *int
	Equipped *bool
}
