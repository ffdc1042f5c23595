package core

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Character is the root object of a character sheet
// mutable, soft-deletable
type Character struct {
	ID                 string           `json:"id" gorm:"primaryKey;type:uuid"`
	Name               string           `json:"name" gorm:"type:text;not null"`
	ClassID            string           `json:"classId" gorm:"type:uuid;not null;index"`
	Class              *CharacterClass  `json:"class,omitempty" gorm:"foreignKey:ClassID"`
	SubclassID         *string          `json:"subclassId" gorm:"type:uuid"`
	Subclass           *Subclass        `json:"subclass,omitempty" gorm:"foreignKey:SubclassID"`
	SpeciesID          string           `json:"speciesId" gorm:"type:uuid;not null;index"`
	Species            *Species         `json:"species,omitempty" gorm:"foreignKey:SpeciesID"`
	BackgroundID       string           `json:"backgroundId" gorm:"type:uuid;not null"`
	Background         *Background      `json:"background,omitempty" gorm:"foreignKey:BackgroundID"`
	Alignment          Alignment        `json:"alignment" gorm:"type:text;not null"`
	Level              int              `json:"level" gorm:"type:integer;not null;default:1"`
	ExperiencePoints   int              `json:"experiencePoints" gorm:"type:integer;not null;default:0"`
	MaxHitPoints       int              `json:"maxHitPoints" gorm:"type:integer;not null;default:0"`
	CurrentHitPoints   int              `json:"currentHitPoints" gorm:"type:integer;not null;default:0"`
	TemporaryHitPoints int              `json:"temporaryHitPoints" gorm:"type:integer;not null;default:0"`
	ArmorClass         int              `json:"armorClass" gorm:"type:integer;not null;default:10"`
	InitiativeBonus    int              `json:"initiativeBonus" gorm:"type:integer;not null;default:0"`
	Speed              int              `json:"speed" gorm:"type:integer;not null;default:30"`
	ProficiencyBonus   int              `json:"proficiencyBonus" gorm:"type:integer;not null;default:2"`
	Inspiration        bool             `json:"inspiration" gorm:"type:boolean;default:false"`
	AbilityScore       *AbilityScore    `json:"abilityScores,omitempty" gorm:"foreignKey:CharacterID"`
	Items              []CharacterItem  `json:"items,omitempty" gorm:"foreignKey:CharacterID"`
	Spells             []CharacterSpell `json:"spells,omitempty" gorm:"foreignKey:CharacterID"`
	CDate              time.Time        `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate              time.Time        `json:"mdate" gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt   `json:"-" gorm:"index"`
}

// AbilityScore holds the six ability scores of a character
// one-to-one with Character
type AbilityScore struct {
	CharacterID  string    `json:"-" gorm:"primaryKey;type:uuid"`
	Strength     int       `json:"strength" gorm:"type:integer;not null"`
	Dexterity    int       `json:"dexterity" gorm:"type:integer;not null"`
	Constitution int       `json:"constitution" gorm:"type:integer;not null"`
	Intelligence int       `json:"intelligence" gorm:"type:integer;not null"`
	Wisdom       int       `json:"wisdom" gorm:"type:integer;not null"`
	Charisma     int       `json:"charisma" gorm:"type:integer;not null"`
	MDate        time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// CharacterClass is a catalog object
// referenced, never owned, by Character
type CharacterClass struct {
	ID                  string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name                string         `json:"name" gorm:"type:text;not null;uniqueIndex"`
	HitDie              HitDie         `json:"hitDie" gorm:"type:text;not null"`
	PrimaryAbility      string         `json:"primaryAbility" gorm:"type:text"`
	SavingThrows        pq.StringArray `json:"savingThrows" gorm:"type:text[]"`
	SpellcastingAbility string         `json:"spellcastingAbility" gorm:"type:text"`
	Description         string         `json:"description" gorm:"type:text"`
	Subclasses          []Subclass     `json:"subclasses,omitempty" gorm:"foreignKey:ClassID"`
	CDate               time.Time      `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate               time.Time      `json:"mdate" gorm:"autoUpdateTime"`
}

// CanCast reports whether members of the class have a spellcasting ability
func (c CharacterClass) CanCast() bool {
	return c.SpellcastingAbility != ""
}

type Subclass struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	ClassID     string    `json:"classId" gorm:"type:uuid;not null;uniqueIndex:uniq_subclass"`
	Name        string    `json:"name" gorm:"type:text;not null;uniqueIndex:uniq_subclass"`
	Description string    `json:"description" gorm:"type:text"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// Species is a catalog object
type Species struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name           string         `json:"name" gorm:"type:text;not null;uniqueIndex"`
	Speed          int            `json:"speed" gorm:"type:integer;not null;default:30"`
	Size           string         `json:"size" gorm:"type:text"`
	AbilityBonuses AbilityBonuses `json:"abilityBonuses" gorm:"type:json"`
	Languages      pq.StringArray `json:"languages" gorm:"type:text[]"`
	Traits         pq.StringArray `json:"traits" gorm:"type:text[]"`
	CDate          time.Time      `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate          time.Time      `json:"mdate" gorm:"autoUpdateTime"`
}

// Background is a catalog object
type Background struct {
	ID                 string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name               string         `json:"name" gorm:"type:text;not null;uniqueIndex"`
	Description        string         `json:"description" gorm:"type:text"`
	SkillProficiencies pq.StringArray `json:"skillProficiencies" gorm:"type:text[]"`
	Feature            string         `json:"feature" gorm:"type:text"`
	CDate              time.Time      `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate              time.Time      `json:"mdate" gorm:"autoUpdateTime"`
}

// Item is a piece of equipment in the catalog
type Item struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string         `json:"name" gorm:"type:text;not null;uniqueIndex"`
	Category    ItemCategory   `json:"category" gorm:"type:text;not null"`
	CostCP      int            `json:"costCp" gorm:"type:integer;default:0"`
	Weight      float64        `json:"weight" gorm:"type:double precision;default:0"`
	Properties  pq.StringArray `json:"properties" gorm:"type:text[]"`
	Description string         `json:"description" gorm:"type:text"`
	CDate       time.Time      `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time      `json:"mdate" gorm:"autoUpdateTime"`
}

// Spell is a catalog object
type Spell struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name          string         `json:"name" gorm:"type:text;not null;uniqueIndex"`
	Level         int            `json:"level" gorm:"type:integer;not null;default:0"`
	School        SpellSchool    `json:"school" gorm:"type:text;not null"`
	CastingTime   string         `json:"castingTime" gorm:"type:text"`
	Range         string         `json:"range" gorm:"type:text"`
	Components    pq.StringArray `json:"components" gorm:"type:text[]"`
	Duration      string         `json:"duration" gorm:"type:text"`
	Concentration bool           `json:"concentration" gorm:"type:boolean;default:false"`
	Ritual        bool           `json:"ritual" gorm:"type:boolean;default:false"`
	Classes       pq.StringArray `json:"classes" gorm:"type:text[]"`
	Description   string         `json:"description" gorm:"type:text"`
	CDate         time.Time      `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate         time.Time      `json:"mdate" gorm:"autoUpdateTime"`
}

// CharacterItem is an inventory entry
type CharacterItem struct {
	CharacterID string    `json:"characterId" gorm:"primaryKey;type:uuid"`
	ItemID      string    `json:"itemId" gorm:"primaryKey;type:uuid"`
	Item        *Item     `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Quantity    int       `json:"quantity" gorm:"type:integer;not null;default:1"`
	Equipped    bool      `json:"equipped" gorm:"type:boolean;default:false"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// CharacterSpell is a spellbook entry
type CharacterSpell struct {
	CharacterID string    `json:"characterId" gorm:"primaryKey;type:uuid"`
	SpellID     string    `json:"spellId" gorm:"primaryKey;type:uuid"`
	Spell       *Spell    `json:"spell,omitempty" gorm:"foreignKey:SpellID"`
	Prepared    bool      `json:"prepared" gorm:"type:boolean;default:false"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// Models lists every table, in migration order
func Models() []any {
	return []any{
		&CharacterClass{},
		&Subclass{},
		&Species{},
		&Background{},
		&Item{},
		&Spell{},
		&Character{},
		&AbilityScore{},
		&CharacterItem{},
		&CharacterSpell{},
	}
}
